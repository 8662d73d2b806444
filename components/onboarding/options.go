package onboarding

import "log"

// Options configures the onboarding component.
type Options struct {
	FormType string
	Logger   *log.Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		FormType: FormType,
	}
}

// NewOptions folds overrides into the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.FormType == "" {
		opts.FormType = FormType
	}
	return opts
}

// WithFormType overrides the form-type discriminator.
func WithFormType(formType string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormType = formType
	}
}

// WithLogger injects the logger passed through to the wizard.
func WithLogger(logger *log.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
