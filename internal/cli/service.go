package cli

import (
	"container/list"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adamluzsi/fleet"
	"github.com/adamluzsi/fleet/containers"
	"github.com/adamluzsi/fleet/filters"
	"github.com/adamluzsi/fleet/iterators"
	"github.com/adamluzsi/fleet/storages/localstorage"
)

const (
	sourceSequence = "sequence"
	sourceList     = "list"
	sourceDB       = "db"
)

var supportedSources = []string{sourceSequence, sourceList, sourceDB}

type serviceOpts struct {
	source   string
	speed    string
	electric bool
	summary  bool
}

func NewServiceCmd(v *viper.Viper) *cobra.Command {
	opts := &serviceOpts{}

	cmd := &cobra.Command{
		Use:   "service",
		Short: "Service every vehicle that passes the filters.",
		Example: `
# service the fast electric vehicles of a roster
fleet service --roster roster.yaml --speed fast --electric

# service the not electric vehicles of the local database
fleet service --source db --electric=false
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			chain, err := opts.chain(cmd, cfg.Filters)
			if err != nil {
				return err
			}

			return runService(cmd.OutOrStdout(), cfg, opts, chain)
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", sourceSequence, fmt.Sprintf("where the vehicles are read from, one of %v", supportedSources))
	cmd.Flags().StringVar(&opts.speed, "speed", "", "only service vehicles of this speed class (fast, medium, slow)")
	cmd.Flags().BoolVar(&opts.electric, "electric", false, "only service electric vehicles, or not electric ones with --electric=false")
	cmd.Flags().BoolVar(&opts.summary, "summary", true, "print a summary table of the serviced vehicles")
	return cmd
}

// chain extends the configured chain with the filters given as flags.
func (opts *serviceOpts) chain(cmd *cobra.Command, configured filters.Chain) (filters.Chain, error) {
	chain := append(filters.Chain{}, configured...)

	if opts.speed != "" {
		speed, err := fleet.ParseSpeed(opts.speed)
		if err != nil {
			return nil, err
		}
		chain = append(chain, filters.Step{Speed: &speed})
	}

	if cmd.Flags().Changed("electric") {
		electric := opts.electric
		chain = append(chain, filters.Step{Electric: &electric})
	}

	return chain, chain.Validate()
}

func runService(out io.Writer, cfg Config, opts *serviceOpts, chain filters.Chain) (rErr error) {
	logger := logrus.WithField("source", opts.source)

	var report Summary
	service := func(c iterators.Cursor[fleet.Vehicle]) error {
		s, err := ServiceAll(out, logger, c, chain)
		report = s
		return err
	}

	switch opts.source {
	case sourceSequence:
		vs, err := LoadRoster(cfg.Roster)
		if err != nil {
			return err
		}
		if err := service(containers.NewSequence(vs...).Iterator()); err != nil {
			return err
		}

	case sourceList:
		vs, err := LoadRoster(cfg.Roster)
		if err != nil {
			return err
		}
		l := list.New()
		for _, v := range vs {
			l.PushBack(v)
		}
		if err := service(iterators.AdaptList[fleet.Vehicle](l)); err != nil {
			return err
		}

	case sourceDB:
		storage, err := localstorage.NewLocal(cfg.DB)
		if err != nil {
			return err
		}
		defer func() {
			if err := storage.Close(); err != nil {
				rErr = multierror.Append(rErr, err)
			}
		}()
		if err := storage.View(service); err != nil {
			return err
		}

	default:
		return errors.Errorf("unknown source %q, supported sources are %v", opts.source, supportedSources)
	}

	if opts.summary {
		return report.Render(out)
	}
	return nil
}

// ServiceAll services every vehicle of src that passes the chain.
// ServiceAll owns src, and closes it together with the filters wrapped around it.
func ServiceAll(out io.Writer, logger logrus.FieldLogger, src iterators.Cursor[fleet.Vehicle], chain filters.Chain) (_ Summary, rErr error) {
	c, err := filters.Apply[fleet.Vehicle](chain, iterators.WithLogging[fleet.Vehicle](src, logger))
	if err != nil {
		return Summary{}, err
	}

	c = iterators.WithCallback(c, iterators.Callback{
		OnFirst: func() { logger.WithField("filters", len(chain)).Info("servicing started") },
		OnClose: func(inner io.Closer) error {
			logger.Debug("releasing cursor chain")
			return inner.Close()
		},
	})
	defer func() {
		if err := c.Close(); err != nil {
			rErr = multierror.Append(rErr, err)
		}
	}()

	var summary Summary
	err = iterators.ForEach(c, func(v fleet.Vehicle) error {
		if s, ok := v.(fleet.Servicer); ok {
			if err := s.Service(out); err != nil {
				return err
			}
		}
		summary.Add(v)
		return nil
	})
	return summary, err
}
