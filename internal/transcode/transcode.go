// Package transcode composes a decoder and an encoder into a single transform.
package transcode

import (
	"fmt"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// Pipeline decodes its input as Source and encodes the resulting raw bytes as Target. It holds no state
// besides the two encodings and can be run any number of times, from any number of goroutines.
type Pipeline struct {
	Source enc.Encoding
	Target enc.Encoding
}

func NewPipeline(source, target enc.Encoding) *Pipeline {
	return &Pipeline{
		Source: source,
		Target: target,
	}
}

func (p *Pipeline) String() string {
	return fmt.Sprintf("%v->%v", p.Source, p.Target)
}

// Run executes both stages. A decoding error stops the pipeline before the encoder is invoked. On error no
// output is returned; errors from the encoders are returned unchanged.
func (p *Pipeline) Run(input []byte) ([]byte, error) {
	log.Debugf("[%v] Decoding %d bytes of %v", p, len(input), p.Source)
	raw, err := enc.Decode(p.Source, input)
	if err != nil {
		log.WithError(err).Debugf("[%v] Decoding failed", p)
		return nil, err
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("[%v] Raw form:\n%s", p, spew.Sdump(raw))
	}

	log.Debugf("[%v] Encoding %d bytes as %v", p, len(raw), p.Target)
	output, err := enc.Encode(p.Target, raw)
	if err != nil {
		log.WithError(err).Debugf("[%v] Encoding failed", p)
		return nil, err
	}
	log.Debugf("[%v] Produced %d bytes", p, len(output))

	return output, nil
}

// Transform is a shorthand for NewPipeline(source, target).Run(input)
func Transform(source, target enc.Encoding, input []byte) ([]byte, error) {
	return NewPipeline(source, target).Run(input)
}
