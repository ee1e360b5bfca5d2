package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adamluzsi/fleet/storages/localstorage"
)

func NewImportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Store the vehicles of a roster into the local database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (rErr error) {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			vs, err := LoadRoster(cfg.Roster)
			if err != nil {
				return err
			}

			storage, err := localstorage.NewLocal(cfg.DB)
			if err != nil {
				return err
			}
			defer func() {
				if err := storage.Close(); err != nil {
					rErr = multierror.Append(rErr, err)
				}
			}()

			var result *multierror.Error
			for _, vehicle := range vs {
				if err := storage.Store(vehicle); err != nil {
					result = multierror.Append(result, err)
				}
			}
			if err := result.ErrorOrNil(); err != nil {
				return err
			}

			total, err := storage.Count()
			if err != nil {
				return err
			}

			logrus.WithField("db", cfg.DB).Infof("imported %d vehicles", len(vs))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d vehicles, %d stored in total\n", len(vs), total)
			return err
		},
	}
}
