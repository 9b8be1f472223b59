package file

import (
	"fmt"

	"go.uber.org/zap"

	"proxyconv/internal/model"
	"proxyconv/internal/publishers"
)

type Publisher struct {
	log *zap.SugaredLogger
}

// Publish writes the document to params["path"] atomically.
func (p *Publisher) Publish(doc *model.Configuration, params map[string]interface{}) error {
	path, _ := params["path"].(string)
	if path == "" {
		return fmt.Errorf("file publisher requires path")
	}

	data, err := model.Encode(doc)
	if err != nil {
		return err
	}

	p.log.Debugf("Writing %d bytes to %s", len(data), path)
	if err := WriteAtomic(path, data, 0644); err != nil {
		return err
	}
	p.log.Infof("Configuration written to %s", path)
	return nil
}

func init() {
	publishers.Register("file", func(log *zap.SugaredLogger) publishers.Publisher {
		return &Publisher{log: log}
	})
}
