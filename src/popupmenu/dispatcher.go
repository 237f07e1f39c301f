package popupmenu

// Handler is the event scope menu activations route through.
// BuildMenu binds each item's callback against its id and teardown
// unbinds it again.  Two live items sharing an id under one Handler is
// an authoring error this package does not detect; the last bind wins.
type Handler interface {
	Bind(id int, fn Callback)
	Unbind(id int)
}

// Dispatcher is a ready made Handler for toolkits that report
// activations as plain command ids.
type Dispatcher struct {
	bound map[int]Callback
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{bound: map[int]Callback{}}
}

func (d *Dispatcher) Bind(id int, fn Callback) { d.bound[id] = fn }

func (d *Dispatcher) Unbind(id int) { delete(d.bound, id) }

// Dispatch invokes the callback bound to id and reports whether one
// was bound.
func (d *Dispatcher) Dispatch(id int) bool {
	fn, ok := d.bound[id]
	if ok {
		fn()
	}
	return ok
}
