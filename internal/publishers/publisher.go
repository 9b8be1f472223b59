package publishers

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"proxyconv/internal/model"
)

// Publisher delivers a finished configuration document somewhere.
type Publisher interface {
	Publish(doc *model.Configuration, params map[string]interface{}) error
}

type Factory func(log *zap.SugaredLogger) Publisher

var registry = make(map[string]Factory)

func Register(name string, factory Factory) {
	registry[name] = factory
}

func Get(name string, log *zap.SugaredLogger) (Publisher, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("publisher plugin '%s' not found (available: %s)", name, strings.Join(Names(), ", "))
	}
	return factory(log), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
