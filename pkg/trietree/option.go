package trietree

import "github.com/sirupsen/logrus"

type Option func(*options) *options

type options struct {
	log logrus.FieldLogger
}

func defaultOptions() *options {
	return &options{
		log: logrus.WithField("component", "trietree"),
	}
}

// WithLogger sets the logger used to report maintenance calls and internal
// bugs. It defaults to the standard logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) *options {
		if log != nil {
			o.log = log
		}
		return o
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		o = opt(o)
	}
	return o
}
