package content

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnsupportedTarget is returned when a command is executed against a block
// it cannot act on.
var ErrUnsupportedTarget = errors.New("action does not support target block")

// Intent is what a command asks its context to do.
type Intent struct {
	Action ActionID
	Target Block
	// On is the state requested for toggleable actions, for one-shot actions
	// it is the current state.
	On bool
}

// ActionContext is supplied by the caller when command is executed. Engine
// never performs network calls, navigation or persistence itself - it only
// signals intent.
type ActionContext interface {
	Target() Block
	Request(Intent) error
}

// Context adapts strongly typed target and callback to ActionContext.
type Context[T Block] struct {
	Block     T
	OnRequest func(target T, intent Intent) error
}

// Target returns nil when no block is set, including nil pointer of a
// concrete variant.
func (c Context[T]) Target() Block {
	if v := reflect.ValueOf(c.Block); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil
	}
	return c.Block
}

func (c Context[T]) Request(intent Intent) error {
	if c.OnRequest == nil {
		return nil
	}
	return c.OnRequest(c.Block, intent)
}

// definition describes capabilities of a known action.
type definition struct {
	toggles bool
	targets []BlockKind
}

var definitions = map[ActionID]definition{
	ActionIDLike:    {toggles: true, targets: []BlockKind{BlockKindComment, BlockKindText, BlockKindImage}},
	ActionIDFollow:  {toggles: true, targets: []BlockKind{BlockKindUser}},
	ActionIDApprove: {toggles: true, targets: []BlockKind{BlockKindComment}},
	ActionIDSpam:    {toggles: true, targets: []BlockKind{BlockKindComment}},
	ActionIDTrash:   {targets: []BlockKind{BlockKindComment}},
	ActionIDEdit:    {targets: []BlockKind{BlockKindComment}},
	ActionIDReply:   {targets: []BlockKind{BlockKindComment}},
}

// aliases maps keys used by the remote service to known identifiers.
var aliases = map[string]ActionID{
	"like-comment":    ActionIDLike,
	"like-post":       ActionIDLike,
	"follow-site":     ActionIDFollow,
	"approve-comment": ActionIDApprove,
	"spam-comment":    ActionIDSpam,
	"trash-comment":   ActionIDTrash,
	"edit-comment":    ActionIDEdit,
	"replyto-comment": ActionIDReply,
}

// Command is a named toggleable unit of user intent attached to a block.
// Everything except on/off state is immutable. State is not synchronized,
// callers toggling the same block from several goroutines must serialize
// access.
type Command struct {
	id    ActionID
	title string
	color string
	def   definition
	on    bool
}

func (c *Command) ID() ActionID  { return c.id }
func (c *Command) Title() string { return c.title }
func (c *Command) On() bool      { return c.on }

// Color returns presentation color (#RRGGBB) or empty string.
func (c *Command) Color() string { return c.color }

// Toggleable reports whether command keeps meaningful on/off state.
func (c *Command) Toggleable() bool { return c.def.toggles }

// SetOn sets state explicitly, i.e. after caller learned actual state from
// the remote service.
func (c *Command) SetOn(on bool) { c.on = on }

// Toggle flips the state. It has no other effects.
func (c *Command) Toggle() { c.on = !c.on }

// CanAct reports whether command can be executed against the block.
func (c *Command) CanAct(b Block) bool {
	return b != nil && slices.Contains(c.def.targets, b.Kind())
}

// Execute signals intent to the context. Toggleable commands flip their state
// once the context accepted the request, one-shot commands never change it.
func (c *Command) Execute(ctx ActionContext) error {
	target := ctx.Target()
	if !c.CanAct(target) {
		kind := "nil"
		if target != nil {
			kind = target.Kind().String()
		}
		return fmt.Errorf("%s on %s block: %w", c.id, kind, ErrUnsupportedTarget)
	}
	want := c.on
	if c.def.toggles {
		want = !c.on
	}
	if err := ctx.Request(Intent{Action: c.id, Target: target, On: want}); err != nil {
		return fmt.Errorf("%s request rejected: %w", c.id, err)
	}
	c.on = want
	return nil
}

// ActionParser turns raw action map into commands.
type ActionParser interface {
	Parse(raw Record) []*Command
}

// Registry holds known action identifiers with their presentation. It is
// read-only after construction and could be shared freely.
type Registry struct {
	known  map[ActionID]struct{}
	titles map[ActionID]string
	colors map[ActionID]string
	log    *zap.Logger
}

// RegistryOption customizes registry at construction.
type RegistryOption func(*Registry)

// WithActions limits registry to listed identifiers.
func WithActions(ids ...ActionID) RegistryOption {
	return func(r *Registry) {
		if len(ids) == 0 {
			return
		}
		r.known = make(map[ActionID]struct{}, len(ids))
		for _, id := range ids {
			if _, ok := definitions[id]; ok {
				r.known[id] = struct{}{}
			}
		}
	}
}

func WithTitle(id ActionID, title string) RegistryOption {
	return func(r *Registry) {
		if title != "" {
			r.titles[id] = title
		}
	}
}

// WithColor sets presentation color, expected in #RRGGBB form.
func WithColor(id ActionID, color string) RegistryOption {
	return func(r *Registry) {
		if color != "" {
			r.colors[id] = color
		}
	}
}

func WithRegistryLogger(log *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// DefaultRegistry knows every action.
var DefaultRegistry = NewRegistry()

// NewRegistry builds registry of known actions, by default all of them.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		known:  make(map[ActionID]struct{}, len(definitions)),
		titles: make(map[ActionID]string, len(definitions)),
		colors: make(map[ActionID]string),
		log:    zap.NewNop(),
	}
	caser := cases.Title(language.English)
	for id := range definitions {
		r.known[id] = struct{}{}
		r.titles[id] = caser.String(id.String())
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Known returns identifiers registry accepts, in declaration order.
func (r *Registry) Known() []ActionID {
	var ids []ActionID
	for _, name := range ActionIDNames() {
		if _, ok := r.known[ActionID(name)]; ok {
			ids = append(ids, ActionID(name))
		}
	}
	return ids
}

// Lookup resolves raw key to known identifier.
func (r *Registry) Lookup(key string) (ActionID, bool) {
	id, ok := aliases[key]
	if !ok {
		var err error
		if id, err = ParseActionID(key); err != nil {
			return "", false
		}
	}
	_, ok = r.known[id]
	return id, ok
}

// New creates command with initial state.
func (r *Registry) New(id ActionID, on bool) (*Command, bool) {
	if _, ok := r.known[id]; !ok {
		return nil, false
	}
	return &Command{
		id:    id,
		title: r.titles[id],
		color: r.colors[id],
		def:   definitions[id],
		on:    on,
	}, true
}

// Parse converts raw action map into commands ordered by identifier
// declaration order. Unknown keys are ignored. When several keys resolve to
// the same identifier (i.e. "like" and "like-comment") keys are visited in
// lexical order and the last one wins.
func (r *Registry) Parse(raw Record) []*Command {
	if len(raw) == 0 {
		return nil
	}
	log := r.log.Named("actions")

	byID := make(map[ActionID]*Command, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		id, ok := r.Lookup(key)
		if !ok {
			log.Debug("Ignoring unknown action", zap.String("key", key))
			continue
		}
		if _, dup := byID[id]; dup {
			log.Debug("Duplicate action, last one wins", zap.String("key", key), zap.Stringer("action", id))
		}
		cmd, _ := r.New(id, toBool(raw[key]))
		byID[id] = cmd
	}

	result := make([]*Command, 0, len(byID))
	for _, id := range r.Known() {
		if cmd, ok := byID[id]; ok {
			result = append(result, cmd)
		}
	}
	return result
}
