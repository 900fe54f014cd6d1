package content

import (
	"net/url"

	"go.uber.org/zap"
)

// Parser turns loosely typed payloads into typed content. It never fails on
// malformed data: everything it cannot understand is dropped or degraded and
// logged at debug level.
type Parser struct {
	actions ActionParser
	log     *zap.Logger
}

// NewParser creates parser using provided action parser, nil means
// DefaultRegistry.
func NewParser(actions ActionParser, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	if actions == nil {
		actions = DefaultRegistry
	}
	return &Parser{actions: actions, log: log.Named("content")}
}

type blockMaker func(base blockBase, rec Record) Block

// makers is closed mapping of discriminators to block variants. There is no
// dedicated image block, image is rendered as text.
var makers = map[BlockKind]blockMaker{
	BlockKindText:    makeTextBlock,
	BlockKindImage:   makeTextBlock,
	BlockKindUser:    makeUserBlock,
	BlockKindComment: makeCommentBlock,
}

// MakeBlocks builds content blocks from raw block records using provided
// action parser. Records which are not objects are skipped, anything else
// produces a block.
func MakeBlocks(raw []any, actions ActionParser, parent ParentContext, log *zap.Logger) []Block {
	return NewParser(actions, log).Blocks(raw, parent)
}

// Blocks builds content blocks from raw block records in input order.
func (p *Parser) Blocks(raw []any, parent ParentContext) []Block {
	if len(raw) == 0 {
		return nil
	}
	log := p.log.Named("blocks")

	blocks := make([]Block, 0, len(raw))
	for i, item := range raw {
		rec, ok := AsRecord(item)
		if !ok {
			log.Debug("Skipping block, not an object", zap.Int("index", i))
			continue
		}
		blocks = append(blocks, p.Block(rec, parent))
	}
	return blocks
}

// Block builds single block, falling back to text block when discriminator is
// absent or unknown.
func (p *Parser) Block(rec Record, parent ParentContext) Block {
	disc, _ := rec.String("type")
	kind := BlockKind(disc)
	build, ok := makers[kind]
	if !ok {
		if disc != "" {
			p.log.Named("blocks").Debug("Unknown block type, using text", zap.String("type", disc))
		}
		kind, build = BlockKindText, makeTextBlock
	}

	text, _ := rec.String("text")
	rawRanges, _ := rec.List("ranges")
	rawMedia, _ := rec.List("media")
	rawActions, _ := rec.Record("actions")
	meta, _ := rec.Record("meta")

	base := newBlockBase(kind, text,
		p.Ranges(rawRanges, text),
		p.Media(rawMedia, text),
		p.actions.Parse(rawActions),
		meta, parent)
	return build(base, rec)
}

func makeTextBlock(base blockBase, _ Record) Block {
	return &TextBlock{blockBase: base}
}

func makeUserBlock(base blockBase, _ Record) Block {
	b := &UserBlock{blockBase: base}
	if ids, ok := base.meta.Path("ids"); ok {
		b.UserID = ids.ID("user")
		b.SiteID = ids.ID("site")
	}
	if links, ok := base.meta.Path("links"); ok {
		b.Home = parseURL(links, "home")
	}
	if titles, ok := base.meta.Path("titles"); ok {
		b.Bio, _ = titles.String("home")
	}
	for _, m := range base.media {
		if m.Kind == "image" && m.URL != nil {
			b.Avatar = m.URL
			break
		}
	}
	return b
}

func makeCommentBlock(base blockBase, _ Record) Block {
	b := &CommentBlock{blockBase: base}
	if ids, ok := base.meta.Path("ids"); ok {
		b.CommentID = ids.ID("comment")
		b.PostID = ids.ID("post")
		b.SiteID = ids.ID("site")
		b.ParentID = ids.ID("parent_comment")
	}
	return b
}

// Media parses block attachments with the same bounds policy as ranges,
// except that media without indices is kept positioned at the text start.
func (p *Parser) Media(raw []any, text string) []Media {
	if len(raw) == 0 {
		return nil
	}
	log := p.log.Named("media")
	textLen := TextLength(text)

	result := make([]Media, 0, len(raw))
	for i, item := range raw {
		rec, ok := AsRecord(item)
		if !ok {
			log.Debug("Dropping media, not an object", zap.Int("index", i))
			continue
		}
		m := Media{URL: parseURL(rec, "url")}
		if m.URL == nil {
			log.Debug("Dropping media without url", zap.Int("index", i))
			continue
		}
		m.Kind, _ = rec.String("type")
		if w, ok := rec.Int("width"); ok && w > 0 {
			m.Width = int(w)
		}
		if h, ok := rec.Int("height"); ok && h > 0 {
			m.Height = int(h)
		}
		if indices, ok := rec.List("indices"); ok && len(indices) >= 2 {
			start, ok1 := toInt(indices[0])
			end, ok2 := toInt(indices[1])
			if !ok1 || !ok2 || start < 0 || start > end || start > int64(textLen) {
				log.Debug("Dropping media with invalid indices", zap.Int("index", i), zap.Any("indices", indices))
				continue
			}
			m.Start, m.End = int(start), int(min(end, int64(textLen)))
		}
		result = append(result, m)
	}
	return result
}

func parseURL(rec Record, key string) *url.URL {
	s, ok := rec.String(key)
	if !ok || s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil
	}
	return u
}
