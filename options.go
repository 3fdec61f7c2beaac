package vector

// Option configures an intersection call.
//
// Example:
//
//	// intersect 3D lines, interpolating z at the breaks
//	as, bs, err := vector.Intersect(a, b, vector.WithZ())
type Option func(*options)

// options holds the configuration of a single intersection call.
type options struct {
	withZ      bool
	boxA, boxB *Box
}

// defaultOptions returns 2D intersection with bounding boxes computed from the polylines.
func defaultOptions() options {
	return options{
		withZ: false,
		boxA:  nil, // computed by Bounds if nil
		boxB:  nil,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithZ makes z participate where it can: segments whose endpoints differ only in z are not degenerate, point inputs compare z, and breaks get a linearly interpolated z. Crossings are still computed in the XY plane.
func WithZ() Option {
	return func(o *options) {
		o.withZ = true
	}
}

// WithBounds passes precomputed bounding boxes of line A and B so that they are not computed again. The boxes must contain their polylines.
//
// Example:
//
//	boxes := make([]vector.Box, len(lines))
//	for i, line := range lines {
//	    boxes[i] = line.Bounds()
//	}
//	as, bs, err := vector.Intersect(lines[i], lines[j], vector.WithBounds(boxes[i], boxes[j]))
func WithBounds(a, b Box) Option {
	return func(o *options) {
		o.boxA, o.boxB = &a, &b
	}
}

// bounds returns the boxes of line A and B, either passed by WithBounds or computed.
func (o options) bounds(a, b *Polyline) (Box, Box) {
	boxA, boxB := Box{}, Box{}
	if o.boxA != nil {
		boxA = *o.boxA
	} else {
		boxA = a.Bounds()
	}
	if o.boxB != nil {
		boxB = *o.boxB
	} else {
		boxB = b.Bounds()
	}
	return boxA, boxB
}
