package stdout

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"proxyconv/internal/model"
	"proxyconv/internal/publishers"
)

type Publisher struct {
	log *zap.SugaredLogger
}

// Publish prints the document. params["_writer"] overrides os.Stdout.
func (p *Publisher) Publish(doc *model.Configuration, params map[string]interface{}) error {
	data, err := model.Encode(doc)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if v, ok := params["_writer"].(io.Writer); ok && v != nil {
		w = v
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	p.log.Debugf("Configuration printed (%d bytes)", len(data))
	return nil
}

func init() {
	publishers.Register("stdout", func(log *zap.SugaredLogger) publishers.Publisher {
		return &Publisher{log: log}
	})
}
