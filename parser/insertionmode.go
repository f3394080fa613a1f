package parser

// insertionMode names the 23 tree construction insertion modes of §5.
type insertionMode int

const (
	initialMode insertionMode = iota
	beforeHTMLMode
	beforeHeadMode
	inHeadMode
	inHeadNoscriptMode
	afterHeadMode
	inBodyMode
	textMode
	inTableMode
	inTableTextMode
	inCaptionMode
	inColumnGroupMode
	inTableBodyMode
	inRowMode
	inCellMode
	inSelectMode
	inSelectInTableMode
	inTemplateMode
	afterBodyMode
	inFramesetMode
	afterFramesetMode
	afterAfterBodyMode
	afterAfterFramesetMode
)

// specialElements is the "special" category of §4.4's scope/implied-end-tag
// rules: elements that exit the current node implicitly before inserting a
// new one, or that the adoption agency algorithm treats as a boundary.
var specialElements = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true, "aside": true,
	"base": true, "basefont": true, "bgsound": true, "blockquote": true, "body": true,
	"br": true, "button": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dir": true, "div": true,
	"dl": true, "dt": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hgroup": true, "hr": true, "html": true,
	"iframe": true, "img": true, "input": true, "keygen": true, "li": true,
	"link": true, "listing": true, "main": true, "marquee": true, "menu": true,
	"meta": true, "nav": true, "noembed": true, "noframes": true, "noscript": true,
	"object": true, "ol": true, "p": true, "param": true, "plaintext": true,
	"pre": true, "script": true, "section": true, "select": true, "source": true,
	"style": true, "summary": true, "table": true, "tbody": true, "td": true,
	"template": true, "textarea": true, "tfoot": true, "th": true, "thead": true,
	"title": true, "tr": true, "track": true, "ul": true, "wbr": true, "xmp": true,
}

func isSpecial(n *Node) bool {
	return n.Namespace == NamespaceHTML && specialElements[n.Data]
}

// impliedEndTags is the set of elements that "generate implied end tags"
// silently pops when a conflicting element is inserted.
var impliedEndTags = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
}

var impliedEndTagsThorough = unionBoundary(impliedEndTags, map[string]bool{
	"caption": true, "colgroup": true, "tbody": true, "td": true, "tfoot": true,
	"th": true, "thead": true, "tr": true,
})
