package iterators

import "github.com/sirupsen/logrus"

// WithLogging traces the traversal of c on debug level.
// The returned cursor owns c.
func WithLogging[T any](c Cursor[T], logger logrus.FieldLogger) *LoggingCursor[T] {
	return &LoggingCursor[T]{src: c, logger: logger}
}

type LoggingCursor[T any] struct {
	src    Cursor[T]
	logger logrus.FieldLogger

	position int
	reported bool
}

func (c *LoggingCursor[T]) First() {
	c.src.First()
	c.position = 0
	c.logger.WithFields(logrus.Fields{
		"position": c.position,
		"done":     c.src.IsDone(),
	}).Debug("cursor rewound")
	c.observe()
}

func (c *LoggingCursor[T]) Next() {
	if c.src.IsDone() {
		c.logger.Debug("next called on a done cursor")
		return
	}
	c.src.Next()
	c.position++
	c.logger.WithFields(logrus.Fields{
		"position": c.position,
		"done":     c.src.IsDone(),
	}).Debug("cursor advanced")
	c.observe()
}

func (c *LoggingCursor[T]) IsDone() bool {
	return c.src.IsDone()
}

func (c *LoggingCursor[T]) Current() T {
	return c.src.Current()
}

func (c *LoggingCursor[T]) Err() error {
	return c.src.Err()
}

// observe reports the failure of the wrapped cursor once, when the traversal ends with it.
func (c *LoggingCursor[T]) observe() {
	if c.reported || !c.src.IsDone() {
		return
	}
	if err := c.src.Err(); err != nil {
		c.reported = true
		c.logger.WithError(err).WithField("position", c.position).Warn("cursor failed")
	}
}

func (c *LoggingCursor[T]) Close() error {
	err := c.src.Close()
	entry := c.logger.WithField("position", c.position)
	if err != nil {
		entry.WithError(err).Error("cursor close failed")
		return err
	}
	entry.Debug("cursor closed")
	return nil
}
