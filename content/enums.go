package content

// Semantic kind of a range over block text. Kinds received from the remote
// service which are not listed here are preserved verbatim and never styled.
// ENUM(user, post, site, comment, blockquote, noticon, link, plugin, theme, italic, match, unknown)
type RangeKind string

// Discriminator of a raw block record.
// ENUM(text, user, comment, image)
type BlockKind string

// Section of an entry a group represents, in rendering order.
// ENUM(header, subject, body)
type GroupKind int

// Identifier of a known action.
// ENUM(like, follow, approve, spam, trash, edit, reply)
type ActionID string
