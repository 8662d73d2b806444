package onboarding

import (
	"github.com/codekaro/formwizard/pkg/backend"
	"github.com/codekaro/formwizard/pkg/catalog"
	"github.com/codekaro/formwizard/pkg/wizard"
)

// Component bundles the onboarding catalog with its configuration so callers
// can stand up a ready-to-run wizard in one call.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Resolver returns a catalog resolver over the onboarding questions.
func (c *Component) Resolver() catalog.Resolver {
	return NewResolver()
}

// NewWizard wires a wizard for this form against the given backend client.
func (c *Component) NewWizard(client backend.Client) (*wizard.Wizard, error) {
	opts := c.Options()
	wizardOpts := []wizard.Option{wizard.WithFormType(opts.FormType)}
	if opts.Logger != nil {
		wizardOpts = append(wizardOpts, wizard.WithLogger(opts.Logger))
	}
	return wizard.New(c.Resolver(), client, wizardOpts...)
}

// NewResolver builds a fresh catalog resolver over the onboarding questions.
// The definitions are fixed, so this cannot fail.
func NewResolver() catalog.Resolver {
	return catalog.MustNew(Questions()...)
}
