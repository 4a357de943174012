// File: registry.go
// Title: Operation Registry
// Description: Named dynstr operations with arity checks, aliases and a
//              sorted listing, shared by the CLI and the REPL.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package ops

import (
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
	"github.com/msto63/dynstr/pkg/dynstr"
)

// RunFunc applies an operation to s. A non-empty result is a report for the
// user (an index, a number, a popped byte); mutating operations return "".
type RunFunc func(s *dynstr.String, args []string) (string, error)

// Operation describes one named operation
type Operation struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	MinArgs     int
	MaxArgs     int
	Run         RunFunc
}

// Synopsis returns "name usage"
func (o *Operation) Synopsis() string {
	if o.Usage == "" {
		return o.Name
	}
	return o.Name + " " + o.Usage
}

// Registry maps names and aliases to operations
type Registry struct {
	operations map[string]*Operation
	aliases    map[string]string
	logger     *log.Logger
	mutex      sync.RWMutex
}

// New creates an empty registry
func New(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Discard()
	}
	return &Registry{
		operations: make(map[string]*Operation),
		aliases:    make(map[string]string),
		logger:     logger.WithField("component", "ops-registry"),
	}
}

// Default creates a registry holding all built-in operations
func Default(logger *log.Logger) *Registry {
	r := New(logger)
	for _, op := range builtins() {
		if err := r.Register(op); err != nil {
			// builtins are static; a failure here is a programming error
			panic(err)
		}
	}
	r.logger.Debug("operation registry initialized", log.Fields{
		"operationCount": len(r.operations),
		"aliasCount":     len(r.aliases),
	})
	return r
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func invalidInput(op, message string) *mdwerror.Error {
	return mdwerror.New(message).WithCode(mdwerror.CodeInvalidInput).WithOperation(op)
}

// Register adds op and its aliases
func (r *Registry) Register(op *Operation) error {
	if op == nil || op.Run == nil {
		return invalidInput("ops.Register", "operation and its Run function must not be nil")
	}
	name := normalize(op.Name)
	if name == "" {
		return invalidInput("ops.Register", "operation name cannot be empty")
	}
	if op.MaxArgs >= 0 && op.MaxArgs < op.MinArgs {
		return invalidInput("ops.Register", "MaxArgs below MinArgs").WithDetail("operation", name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.operations[name]; exists {
		return invalidInput("ops.Register", "operation already registered").WithDetail("operation", name)
	}
	for _, alias := range op.Aliases {
		if _, exists := r.lookupLocked(alias); exists {
			return invalidInput("ops.Register", "alias already in use").WithDetail("alias", alias)
		}
	}

	op.Name = name
	r.operations[name] = op
	for _, alias := range op.Aliases {
		r.aliases[normalize(alias)] = name
	}

	r.logger.Trace("operation registered", log.Fields{
		"operation": name,
		"aliases":   len(op.Aliases),
	})
	return nil
}

// RegisterAlias maps alias to an existing operation
func (r *Registry) RegisterAlias(alias, name string) error {
	alias, name = normalize(alias), normalize(name)
	if alias == "" {
		return invalidInput("ops.RegisterAlias", "alias name cannot be empty")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.operations[name]; !exists {
		return mdwerror.New("unknown operation").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("ops.RegisterAlias").
			WithDetail("operation", name)
	}
	if _, exists := r.lookupLocked(alias); exists {
		return invalidInput("ops.RegisterAlias", "alias already in use").WithDetail("alias", alias)
	}
	r.aliases[alias] = name
	return nil
}

func (r *Registry) lookupLocked(name string) (*Operation, bool) {
	name = normalize(name)
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	op, ok := r.operations[name]
	return op, ok
}

// Lookup resolves a name or alias
func (r *Registry) Lookup(name string) (*Operation, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	op, ok := r.lookupLocked(name)
	if !ok {
		return nil, mdwerror.New("unknown operation").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("ops.Lookup").
			WithDetail("operation", name)
	}
	return op, nil
}

// Has reports whether name resolves to an operation
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// List returns all operations sorted by name
func (r *Registry) List() []*Operation {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	list := make([]*Operation, 0, len(r.operations))
	for _, op := range r.operations {
		list = append(list, op)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Apply runs the named operation on s after checking its arity
func (r *Registry) Apply(s *dynstr.String, name string, args []string) (string, error) {
	op, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	if len(args) < op.MinArgs || (op.MaxArgs >= 0 && len(args) > op.MaxArgs) {
		return "", invalidInput(op.Name, "wrong number of arguments").
			WithDetail("usage", op.Synopsis()).
			WithDetail("got", len(args))
	}

	result, err := op.Run(s, args)
	if err != nil {
		r.logger.Debug("operation failed", log.Fields{
			"operation": op.Name,
			"code":      mdwerror.GetCode(err).String(),
		})
		return result, err
	}
	r.logger.Trace("operation applied", log.Fields{
		"operation": op.Name,
		"size":      s.Len(),
		"cap":       s.Cap(),
	})
	return result, nil
}

// ApplyAll runs steps in order and collects their reports. It stops at the
// first failing step.
func (r *Registry) ApplyAll(s *dynstr.String, steps []Step) ([]string, error) {
	reports := make([]string, 0, len(steps))
	for _, step := range steps {
		out, err := r.Apply(s, step.Name, step.Args)
		if err != nil {
			return reports, err
		}
		if out != "" {
			reports = append(reports, step.Name+": "+out)
		}
	}
	return reports, nil
}
