package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation"
)

const (
	// LabelDiscrete is set on every registered kind to "true" or "false".
	LabelDiscrete = "discrete"
	// LabelFamily groups kinds, e.g. numeric, temporal or network.
	LabelFamily = "family"
)

type Registry interface {
	Register(k Kind, lbls labels.Set) error
	Get(name string) (Kind, error)
	Has(name string) bool
	Labels(name string) (labels.Set, error)
	Select(selector labels.Selector) []Kind
	Names() []string
	Count() int
}

type ValidationFn func(name string) error

type Option func(*registry)

// WithLogger sets the logger; registrations are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(r *registry) { r.log = l }
}

// WithValidation replaces the default name validation, which requires a
// DNS-1123 label.
func WithValidation(v ValidationFn) Option {
	return func(r *registry) { r.validateFn = v }
}

func New(initEntries []Entry, opts ...Option) (Registry, error) {
	r := &registry{
		m:          new(sync.RWMutex),
		kinds:      map[string]Entry{},
		log:        logr.Discard(),
		validateFn: validateName,
	}
	for _, o := range opts {
		o(r)
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.Kind, e.Labels); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

type registry struct {
	m          *sync.RWMutex
	kinds      map[string]Entry
	log        logr.Logger
	validateFn ValidationFn
}

func validateName(name string) error {
	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return fmt.Errorf("invalid kind name %q: %s", name, strings.Join(errs, ", "))
	}
	return nil
}

func (r *registry) Register(k Kind, lbls labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(k, lbls)
}

func (r *registry) add(k Kind, lbls labels.Set) error {
	if k == nil {
		return fmt.Errorf("cannot register a nil kind")
	}
	if r.validateFn != nil {
		if err := r.validateFn(k.Name()); err != nil {
			return err
		}
	}
	if _, ok := r.kinds[k.Name()]; ok {
		return fmt.Errorf("kind %s already registered", k.Name())
	}
	lbls = labels.Merge(lbls, labels.Set{LabelDiscrete: strconv.FormatBool(k.Discrete())})
	r.kinds[k.Name()] = Entry{Kind: k, Labels: lbls}
	r.log.V(1).Info("registered kind", "name", k.Name(), "labels", lbls.String())
	return nil
}

func (r *registry) Get(name string) (Kind, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.kinds[name]
	if !ok {
		return nil, fmt.Errorf("kind %s not found, known kinds: %s", name, strings.Join(r.names(), ", "))
	}
	return e.Kind, nil
}

func (r *registry) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.kinds[name]
	return ok
}

func (r *registry) Labels(name string) (labels.Set, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.kinds[name]
	if !ok {
		return nil, fmt.Errorf("kind %s not found", name)
	}
	return labels.Merge(e.Labels, nil), nil
}

// Select returns the kinds whose labels match selector, sorted by name.
func (r *registry) Select(selector labels.Selector) []Kind {
	r.m.RLock()
	defer r.m.RUnlock()

	var kinds []Kind
	for _, name := range r.names() {
		e := r.kinds[name]
		if selector.Matches(e.Labels) {
			kinds = append(kinds, e.Kind)
		}
	}
	r.log.V(1).Info("selected kinds", "selector", selector.String(), "count", len(kinds))
	return kinds
}

func (r *registry) Names() []string {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.names()
}

func (r *registry) names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *registry) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.kinds)
}
