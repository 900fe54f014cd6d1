package content

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// blockNamespace seeds deterministic block identities.
var blockNamespace = uuid.MustParse("5b1c9f4e-6a1d-4f0b-9a53-0f1e2c7d8a44")

// ParentContext describes entry a block belongs to.
type ParentContext struct {
	EntryID   ID
	EntryType string
	Group     GroupKind
}

// Media is a non textual attachment of a block (avatar, badge, inline image)
// positioned over block text the same way ranges are.
type Media struct {
	Kind   string
	URL    *url.URL
	Start  int
	End    int
	Width  int
	Height int
}

// Block is one semantically typed unit of text with ranges and actions. The
// set of implementations is closed: *TextBlock, *UserBlock and *CommentBlock.
// Consumers are expected to type switch over them.
type Block interface {
	// Kind returns discriminator block was built from. Note that image
	// blocks are rendered as *TextBlock.
	Kind() BlockKind
	// ID is stable identity derived from kind, text and ranges.
	ID() uuid.UUID
	Text() string
	Ranges() []Range
	Media() []Media
	Actions() []*Command
	Action(id ActionID) *Command
	Meta() Record
	Parent() ParentContext

	sealed()
}

type blockBase struct {
	kind    BlockKind
	id      uuid.UUID
	text    string
	ranges  []Range
	media   []Media
	actions []*Command
	meta    Record
	parent  ParentContext
}

func newBlockBase(kind BlockKind, text string, ranges []Range, media []Media, actions []*Command, meta Record, parent ParentContext) blockBase {
	return blockBase{
		kind:    kind,
		id:      blockID(kind, text, ranges),
		text:    text,
		ranges:  ranges,
		media:   media,
		actions: actions,
		meta:    meta,
		parent:  parent,
	}
}

func (b *blockBase) Kind() BlockKind       { return b.kind }
func (b *blockBase) ID() uuid.UUID         { return b.id }
func (b *blockBase) Text() string          { return b.text }
func (b *blockBase) Meta() Record          { return maps.Clone(b.meta) }
func (b *blockBase) Parent() ParentContext { return b.parent }
func (b *blockBase) sealed()               {}

// Ranges returns a copy including URLs, block itself stays immutable. Meta
// is a shallow copy, nested values must be treated as read-only.
func (b *blockBase) Ranges() []Range {
	ranges := slices.Clone(b.ranges)
	for i := range ranges {
		ranges[i].URL = cloneURL(ranges[i].URL)
	}
	return ranges
}

func (b *blockBase) Media() []Media {
	media := slices.Clone(b.media)
	for i := range media {
		media[i].URL = cloneURL(media[i].URL)
	}
	return media
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}

// Actions returns commands attached to the block. Slice is a copy, but
// commands are shared so toggling them changes block state.
func (b *blockBase) Actions() []*Command { return slices.Clone(b.actions) }

// Action returns command by identifier or nil.
func (b *blockBase) Action(id ActionID) *Command {
	for _, c := range b.actions {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// TextBlock is generic text. Also used for "image" blocks and for anything
// with missing or unrecognized discriminator.
type TextBlock struct {
	blockBase
}

// UserBlock introduces a user.
type UserBlock struct {
	blockBase

	UserID ID
	SiteID ID
	Avatar *url.URL
	Home   *url.URL
	Bio    string
}

// Name returns user display name.
func (b *UserBlock) Name() string { return b.text }

// Following reports state of follow action if present.
func (b *UserBlock) Following() bool {
	if c := b.Action(ActionIDFollow); c != nil {
		return c.On()
	}
	return false
}

// CommentBlock quotes a comment.
type CommentBlock struct {
	blockBase

	CommentID ID
	PostID    ID
	SiteID    ID
	ParentID  ID
}

// Approved reports state of approve action, comments without moderation
// actions are considered approved.
func (b *CommentBlock) Approved() bool {
	if c := b.Action(ActionIDApprove); c != nil {
		return c.On()
	}
	return true
}

// Liked reports state of like action if present.
func (b *CommentBlock) Liked() bool {
	if c := b.Action(ActionIDLike); c != nil {
		return c.On()
	}
	return false
}

func blockID(kind BlockKind, text string, ranges []Range) uuid.UUID {
	var sb strings.Builder
	sb.WriteString(kind.String())
	sb.WriteByte(0)
	sb.WriteString(text)
	for _, r := range ranges {
		fmt.Fprintf(&sb, "\x00%s:%d:%d", r.Kind, r.Start, r.Length)
		if r.URL != nil {
			sb.WriteString(r.URL.String())
		}
	}
	return uuid.NewSHA1(blockNamespace, []byte(sb.String()))
}
