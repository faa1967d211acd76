package responder

import "github.com/hupe1980/dealdesk/model"

// PoolOptions configure pool construction.
type PoolOptions struct {
	// Instructions overrides the default role instructions per responder.
	// Entries for unknown IDs are ignored.
	Instructions map[ID]string
}

// Pool is the fixed mapping from responder identifier to capability. It is
// immutable after construction; no dynamic registration.
type Pool struct {
	responders map[ID]*Responder
	general    *Responder
}

// NewPool builds the full responder set backed by one generator, using the
// default role instructions unless overridden.
func NewPool(gen model.Generator, optFns ...func(o *PoolOptions)) *Pool {
	opts := PoolOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	p := &Pool{responders: make(map[ID]*Responder, len(All()))}
	for _, id := range All() {
		instructions := defaultInstructions[id]
		if override, ok := opts.Instructions[id]; ok {
			instructions = override
		}
		p.responders[id] = New(id, instructions, gen)
	}
	p.general = p.responders[General]
	return p
}

// Get resolves an identifier to its responder. Unknown identifiers resolve
// to the general assistant.
func (p *Pool) Get(id ID) *Responder {
	if r, ok := p.responders[id]; ok {
		return r
	}
	return p.general
}

// Has reports whether id names a configured responder.
func (p *Pool) Has(id ID) bool {
	_, ok := p.responders[id]
	return ok
}
