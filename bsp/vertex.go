package bsp

// Vertex is the unit of computation the engine schedules. Concrete vertex
// types embed State, which supplies every method except Update; Update carries
// the algorithm itself and is called once per superstep while the vertex is
// active.
//
// The unexported state method seals the interface: only types embedding State
// can satisfy Vertex, which is what lets the engine reach the mailboxes and
// lifecycle flags it manages between supersteps.
type Vertex interface {
	// ID reports the externally supplied vertex key.
	ID() string

	// Value reports the vertex's current algorithm value.
	Value() any

	// Superstep reports the zero-based round the vertex is computing in.
	Superstep() int

	// Active reports whether the vertex takes part in the next compute phase.
	Active() bool

	// Update advances the vertex by one superstep: read Inbox, adjust the
	// value, queue outgoing messages, and optionally Halt. A non-nil error
	// aborts the whole run.
	Update() error

	// state grants the engine access to the embedded State.
	state() *State
}

// Edge is one directed out-edge: a reference to the target vertex and a static
// weight. Edges keep insertion order, so broadcast fan-out is deterministic.
type Edge struct {
	Target Vertex
	Weight float64
}

// Message is one inbox entry: the sending vertex, the weight the sender
// attached, and an opaque payload the engine never inspects.
type Message struct {
	From   Vertex
	Weight float64
	Value  any
}

// envelope is one outbox entry: a payload addressed to a destination vertex,
// parked until the routing phase moves it.
type envelope struct {
	to     Vertex
	weight float64
	value  any
}

// State is the engine-managed half of a vertex: identity, algorithm value,
// out-edges, the two mailboxes, the activity flag, and the superstep mirror.
// Embed it in a concrete vertex type and implement Update on that type.
//
// State carries no locks. During the compute phase each vertex is owned by
// exactly one worker, and between phases only the engine touches it, so all
// methods may be called without synchronization from within Update.
type State struct {
	id        string
	value     any
	edges     []Edge
	inbox     []Message
	outbox    []envelope
	active    bool
	superstep int
}

// NewState returns the embeddable engine state for a vertex with the given ID
// and initial value. Vertices start active, at superstep zero, with empty
// mailboxes.
func NewState(id string, value any) State {
	return State{id: id, value: value, active: true}
}

// ID reports the externally supplied vertex key.
func (s *State) ID() string { return s.id }

// Value reports the current algorithm value.
func (s *State) Value() any { return s.value }

// SetValue replaces the algorithm value.
func (s *State) SetValue(v any) { s.value = v }

// Superstep reports the zero-based round the vertex is computing in. The
// engine advances it for every vertex at each barrier, so during Update it
// always equals the global round index.
func (s *State) Superstep() int { return s.superstep }

// Active reports whether the vertex takes part in the next compute phase.
func (s *State) Active() bool { return s.active }

// Halt withdraws the vertex from subsequent compute phases. Delivery of a new
// message reactivates it.
func (s *State) Halt() { s.active = false }

// Edges returns the vertex's out-edges in insertion order. The slice is the
// vertex's own; callers must not modify it.
func (s *State) Edges() []Edge { return s.edges }

// AddEdge appends a directed out-edge to the given target with a static
// weight. Targets are validated by New; an edge added there as nil surfaces
// as ErrNilTarget.
func (s *State) AddEdge(to Vertex, weight float64) {
	s.edges = append(s.edges, Edge{Target: to, Weight: weight})
}

// Inbox returns the messages delivered for the current superstep, in the
// deterministic order the router placed them. The slice is replaced, never
// reused, at the next routing phase, so callers may retain it.
func (s *State) Inbox() []Message { return s.inbox }

// Send queues one message for delivery to the given vertex at the start of
// the next superstep. The payload travels opaquely; weight is whatever the
// algorithm wants the receiver to see, conventionally the connecting edge's
// weight.
func (s *State) Send(to Vertex, weight float64, value any) {
	s.outbox = append(s.outbox, envelope{to: to, weight: weight, value: value})
}

// Broadcast queues value to every out-neighbor, attaching each edge's weight.
func (s *State) Broadcast(value any) {
	for _, e := range s.edges {
		s.Send(e.Target, e.Weight, value)
	}
}

// state seals the Vertex interface and hands the engine its half of the
// vertex.
func (s *State) state() *State { return s }
