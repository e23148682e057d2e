package hdrmap

// Options configures a new [Map].
type Options struct {
	// Capacity is a hint for the number of distinct header names.
	// Zero means the default.
	Capacity int
}

const defCapacity = 16

func (o *Options) capacity() int {
	if o == nil || o.Capacity <= 0 {
		return defCapacity
	}
	return o.Capacity
}
