// Package registry holds the custom recognitions and actions this agent
// exposes, keyed by the names pipelines refer to them by.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MaaXYZ/maa-framework-go/v3"
)

var (
	ErrEmptyName = errors.New("empty custom name")
	ErrDuplicate = errors.New("duplicate custom name")
	ErrRejected  = errors.New("custom rejected by host")
)

type RecognitionRunner interface {
	Run(ctx *maa.Context, arg *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool)
}

type ActionRunner interface {
	Run(ctx *maa.Context, arg *maa.CustomActionArg) bool
}

// Sink receives the registered entries, normally the agent server. A false
// return means the entry was not accepted.
type Sink interface {
	RegisterRecognition(name string, r RecognitionRunner) bool
	RegisterAction(name string, a ActionRunner) bool
}

type Registry struct {
	recognitions map[string]RecognitionRunner
	actions      map[string]ActionRunner
}

func New() *Registry {
	return &Registry{
		recognitions: make(map[string]RecognitionRunner),
		actions:      make(map[string]ActionRunner),
	}
}

func (r *Registry) AddRecognition(name string, runner RecognitionRunner) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.recognitions[name]; ok {
		return fmt.Errorf("%w: recognition %q", ErrDuplicate, name)
	}
	r.recognitions[name] = runner
	return nil
}

func (r *Registry) AddAction(name string, runner ActionRunner) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.actions[name]; ok {
		return fmt.Errorf("%w: action %q", ErrDuplicate, name)
	}
	r.actions[name] = runner
	return nil
}

func (r *Registry) Recognition(name string) (RecognitionRunner, bool) {
	runner, ok := r.recognitions[name]
	return runner, ok
}

func (r *Registry) Action(name string) (ActionRunner, bool) {
	runner, ok := r.actions[name]
	return runner, ok
}

// RecognitionNames returns the registered recognition names, sorted.
func (r *Registry) RecognitionNames() []string {
	return sortedKeys(r.recognitions)
}

// ActionNames returns the registered action names, sorted.
func (r *Registry) ActionNames() []string {
	return sortedKeys(r.actions)
}

// Install hands every entry to sink in name order, recognitions first. It
// stops at the first entry the sink rejects.
func (r *Registry) Install(sink Sink) error {
	for _, name := range r.RecognitionNames() {
		if !sink.RegisterRecognition(name, r.recognitions[name]) {
			return fmt.Errorf("%w: recognition %q", ErrRejected, name)
		}
	}
	for _, name := range r.ActionNames() {
		if !sink.RegisterAction(name, r.actions[name]) {
			return fmt.Errorf("%w: action %q", ErrRejected, name)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AgentServer installs entries into the running MaaFramework agent server.
type AgentServer struct{}

func (AgentServer) RegisterRecognition(name string, r RecognitionRunner) bool {
	return maa.AgentServerRegisterCustomRecognition(name, r)
}

func (AgentServer) RegisterAction(name string, a ActionRunner) bool {
	return maa.AgentServerRegisterCustomAction(name, a)
}
