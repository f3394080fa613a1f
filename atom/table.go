// Code generated by the atom table builder. DO NOT hand-edit the offsets below;
// regenerate from the name list if it ever needs to change.
package atom

const maxAtomLen = 21

const atomText = "aabbracronymaddressappletareaarticleasideaudiobbasebasefontbdibdobgsoundbigblockquotebodybrbuttoncanvascaptioncentercitecodecolcolgroupdatadatalistdddeldescdetailsdfndialogdirdivdldtemembedfieldsetfigcaptionfigurefontfooterforeignObjectformframeframeseth1h2h3h4h5h6headheaderhgrouphrhtmliiframeimageimginputinsisindexkbdkeygenlabellegendlilinklistingmainmapmarkmarqueemathmenumenuitemmetametermimnmomsmtextnavnobrnoembednoframesnoscriptobjectoloptgroupoptionoutputpparampictureplaintextpreprogressqrbrprtrtcrubyssampscriptsectionselectslotsmallsourcespanstrikestrongstylesubsummarysupsvgtabletbodytdtemplatetextareatfootththeadtimetitletrtrackttuulvarvideowbrxmpannotation-xmlacceptaccept-charsetaccesskeyactionalignalinkallowallowfullscreenallowpaymentrequestaltandapprovedasyncautocapitalizeautocompleteautofocusautoplaybackgroundbgcolorbordercapturecellpaddingcellspacingchallengecharsetcheckedclassclassidcodebasecolorcolscolspancontentcontenteditablecontextmenucontrolscoordscrossorigindatetimedeclaredefaultdeferdirnamedisableddownloaddraggabledropzoneenctypeencodingfaceforformactionformenctypeformmethodformnovalidateformtargetheadersheighthiddenhighhrefhreflanghttp-equiviconidimportanceinputmodeintegrityisismapitemiditempropitemrefitemscopeitemtypekeytypekindlanglanguagelistloadinglongdesclooplowmanifestmarginheightmarginwidthmaxmaxlengthmediamediagroupmethodminminlengthmultiplemutednamenohrefnomodulenoncenoresizenoshadenovalidatenowrapopenoptimumpatternpingplaceholderplaysinlineposterpreloadprofileradiogroupreadonlyreferrerpolicyrelrequiredrevreversedrowsrowspansandboxschemescopescopedscrollingseamlessselectedshapesizesizesspellchecksrcsrcdocsrclangsrcsetstandbystartsteptabindextargettranslatetypetypemustmatchusemapvalignvaluevaluetypeversionwidthwrapxmlnsxlink:actuatexlink:arcrolexlink:hrefxlink:rolexlink:showxlink:titlexlink:typexml:basexml:langxml:spacetext/htmlapplication/xhtml+xml"

type atomLiteral struct {
	offset, length uint32
}

var atomList = []atomLiteral{
	{0, 1}, // a
	{1, 4}, // abbr
	{5, 7}, // acronym
	{12, 7}, // address
	{19, 6}, // applet
	{25, 4}, // area
	{29, 7}, // article
	{36, 5}, // aside
	{41, 5}, // audio
	{46, 1}, // b
	{47, 4}, // base
	{51, 8}, // basefont
	{59, 3}, // bdi
	{62, 3}, // bdo
	{65, 7}, // bgsound
	{72, 3}, // big
	{75, 10}, // blockquote
	{85, 4}, // body
	{89, 2}, // br
	{91, 6}, // button
	{97, 6}, // canvas
	{103, 7}, // caption
	{110, 6}, // center
	{116, 4}, // cite
	{120, 4}, // code
	{124, 3}, // col
	{127, 8}, // colgroup
	{135, 4}, // data
	{139, 8}, // datalist
	{147, 2}, // dd
	{149, 3}, // del
	{152, 4}, // desc
	{156, 7}, // details
	{163, 3}, // dfn
	{166, 6}, // dialog
	{172, 3}, // dir
	{175, 3}, // div
	{178, 2}, // dl
	{180, 2}, // dt
	{182, 2}, // em
	{184, 5}, // embed
	{189, 8}, // fieldset
	{197, 10}, // figcaption
	{207, 6}, // figure
	{213, 4}, // font
	{217, 6}, // footer
	{223, 13}, // foreignObject
	{236, 4}, // form
	{240, 5}, // frame
	{245, 8}, // frameset
	{253, 2}, // h1
	{255, 2}, // h2
	{257, 2}, // h3
	{259, 2}, // h4
	{261, 2}, // h5
	{263, 2}, // h6
	{265, 4}, // head
	{269, 6}, // header
	{275, 6}, // hgroup
	{281, 2}, // hr
	{283, 4}, // html
	{287, 1}, // i
	{288, 6}, // iframe
	{294, 5}, // image
	{299, 3}, // img
	{302, 5}, // input
	{307, 3}, // ins
	{310, 7}, // isindex
	{317, 3}, // kbd
	{320, 6}, // keygen
	{326, 5}, // label
	{331, 6}, // legend
	{337, 2}, // li
	{339, 4}, // link
	{343, 7}, // listing
	{350, 4}, // main
	{354, 3}, // map
	{357, 4}, // mark
	{361, 7}, // marquee
	{368, 4}, // math
	{372, 4}, // menu
	{376, 8}, // menuitem
	{384, 4}, // meta
	{388, 5}, // meter
	{393, 2}, // mi
	{395, 2}, // mn
	{397, 2}, // mo
	{399, 2}, // ms
	{401, 5}, // mtext
	{406, 3}, // nav
	{409, 4}, // nobr
	{413, 7}, // noembed
	{420, 8}, // noframes
	{428, 8}, // noscript
	{436, 6}, // object
	{442, 2}, // ol
	{444, 8}, // optgroup
	{452, 6}, // option
	{458, 6}, // output
	{464, 1}, // p
	{465, 5}, // param
	{470, 7}, // picture
	{477, 9}, // plaintext
	{486, 3}, // pre
	{489, 8}, // progress
	{497, 1}, // q
	{498, 2}, // rb
	{500, 2}, // rp
	{502, 2}, // rt
	{504, 3}, // rtc
	{507, 4}, // ruby
	{511, 1}, // s
	{512, 4}, // samp
	{516, 6}, // script
	{522, 7}, // section
	{529, 6}, // select
	{535, 4}, // slot
	{539, 5}, // small
	{544, 6}, // source
	{550, 4}, // span
	{554, 6}, // strike
	{560, 6}, // strong
	{566, 5}, // style
	{571, 3}, // sub
	{574, 7}, // summary
	{581, 3}, // sup
	{584, 3}, // svg
	{587, 5}, // table
	{592, 5}, // tbody
	{597, 2}, // td
	{599, 8}, // template
	{607, 8}, // textarea
	{615, 5}, // tfoot
	{620, 2}, // th
	{622, 5}, // thead
	{627, 4}, // time
	{631, 5}, // title
	{636, 2}, // tr
	{638, 5}, // track
	{643, 2}, // tt
	{645, 1}, // u
	{646, 2}, // ul
	{648, 3}, // var
	{651, 5}, // video
	{656, 3}, // wbr
	{659, 3}, // xmp
	{662, 14}, // annotation-xml
	{676, 6}, // accept
	{682, 14}, // accept-charset
	{696, 9}, // accesskey
	{705, 6}, // action
	{711, 5}, // align
	{716, 5}, // alink
	{721, 5}, // allow
	{726, 15}, // allowfullscreen
	{741, 19}, // allowpaymentrequest
	{760, 3}, // alt
	{763, 3}, // and
	{766, 8}, // approved
	{774, 5}, // async
	{779, 14}, // autocapitalize
	{793, 12}, // autocomplete
	{805, 9}, // autofocus
	{814, 8}, // autoplay
	{822, 10}, // background
	{832, 7}, // bgcolor
	{839, 6}, // border
	{845, 7}, // capture
	{852, 11}, // cellpadding
	{863, 11}, // cellspacing
	{874, 9}, // challenge
	{883, 7}, // charset
	{890, 7}, // checked
	{897, 5}, // class
	{902, 7}, // classid
	{909, 8}, // codebase
	{917, 5}, // color
	{922, 4}, // cols
	{926, 7}, // colspan
	{933, 7}, // content
	{940, 15}, // contenteditable
	{955, 11}, // contextmenu
	{966, 8}, // controls
	{974, 6}, // coords
	{980, 11}, // crossorigin
	{991, 8}, // datetime
	{999, 7}, // declare
	{1006, 7}, // default
	{1013, 5}, // defer
	{1018, 7}, // dirname
	{1025, 8}, // disabled
	{1033, 8}, // download
	{1041, 9}, // draggable
	{1050, 8}, // dropzone
	{1058, 7}, // enctype
	{1065, 8}, // encoding
	{1073, 4}, // face
	{1077, 3}, // for
	{1080, 10}, // formaction
	{1090, 11}, // formenctype
	{1101, 10}, // formmethod
	{1111, 14}, // formnovalidate
	{1125, 10}, // formtarget
	{1135, 7}, // headers
	{1142, 6}, // height
	{1148, 6}, // hidden
	{1154, 4}, // high
	{1158, 4}, // href
	{1162, 8}, // hreflang
	{1170, 10}, // http-equiv
	{1180, 4}, // icon
	{1184, 2}, // id
	{1186, 10}, // importance
	{1196, 9}, // inputmode
	{1205, 9}, // integrity
	{1214, 2}, // is
	{1216, 5}, // ismap
	{1221, 6}, // itemid
	{1227, 8}, // itemprop
	{1235, 7}, // itemref
	{1242, 9}, // itemscope
	{1251, 8}, // itemtype
	{1259, 7}, // keytype
	{1266, 4}, // kind
	{1270, 4}, // lang
	{1274, 8}, // language
	{1282, 4}, // list
	{1286, 7}, // loading
	{1293, 8}, // longdesc
	{1301, 4}, // loop
	{1305, 3}, // low
	{1308, 8}, // manifest
	{1316, 12}, // marginheight
	{1328, 11}, // marginwidth
	{1339, 3}, // max
	{1342, 9}, // maxlength
	{1351, 5}, // media
	{1356, 10}, // mediagroup
	{1366, 6}, // method
	{1372, 3}, // min
	{1375, 9}, // minlength
	{1384, 8}, // multiple
	{1392, 5}, // muted
	{1397, 4}, // name
	{1401, 6}, // nohref
	{1407, 8}, // nomodule
	{1415, 5}, // nonce
	{1420, 8}, // noresize
	{1428, 7}, // noshade
	{1435, 10}, // novalidate
	{1445, 6}, // nowrap
	{1451, 4}, // open
	{1455, 7}, // optimum
	{1462, 7}, // pattern
	{1469, 4}, // ping
	{1473, 11}, // placeholder
	{1484, 11}, // playsinline
	{1495, 6}, // poster
	{1501, 7}, // preload
	{1508, 7}, // profile
	{1515, 10}, // radiogroup
	{1525, 8}, // readonly
	{1533, 14}, // referrerpolicy
	{1547, 3}, // rel
	{1550, 8}, // required
	{1558, 3}, // rev
	{1561, 8}, // reversed
	{1569, 4}, // rows
	{1573, 7}, // rowspan
	{1580, 7}, // sandbox
	{1587, 6}, // scheme
	{1593, 5}, // scope
	{1598, 6}, // scoped
	{1604, 9}, // scrolling
	{1613, 8}, // seamless
	{1621, 8}, // selected
	{1629, 5}, // shape
	{1634, 4}, // size
	{1638, 5}, // sizes
	{1643, 10}, // spellcheck
	{1653, 3}, // src
	{1656, 6}, // srcdoc
	{1662, 7}, // srclang
	{1669, 6}, // srcset
	{1675, 7}, // standby
	{1682, 5}, // start
	{1687, 4}, // step
	{1691, 8}, // tabindex
	{1699, 6}, // target
	{1705, 9}, // translate
	{1714, 4}, // type
	{1718, 13}, // typemustmatch
	{1731, 6}, // usemap
	{1737, 6}, // valign
	{1743, 5}, // value
	{1748, 9}, // valuetype
	{1757, 7}, // version
	{1764, 5}, // width
	{1769, 4}, // wrap
	{1773, 5}, // xmlns
	{1778, 13}, // xlink:actuate
	{1791, 13}, // xlink:arcrole
	{1804, 10}, // xlink:href
	{1814, 10}, // xlink:role
	{1824, 10}, // xlink:show
	{1834, 11}, // xlink:title
	{1845, 10}, // xlink:type
	{1855, 8}, // xml:base
	{1863, 8}, // xml:lang
	{1871, 9}, // xml:space
	{1880, 9}, // text/html
	{1889, 21}, // application/xhtml+xml
}

// Predefined atom constants for the most common tag and attribute names.
const (
	A Atom = 0 << 8 | 1
	Abbr Atom = 1 << 8 | 4
	Acronym Atom = 5 << 8 | 7
	Address Atom = 12 << 8 | 7
	Applet Atom = 19 << 8 | 6
	Area Atom = 25 << 8 | 4
	Article Atom = 29 << 8 | 7
	Aside Atom = 36 << 8 | 5
	Audio Atom = 41 << 8 | 5
	B Atom = 46 << 8 | 1
	Base Atom = 47 << 8 | 4
	Basefont Atom = 51 << 8 | 8
	Bdi Atom = 59 << 8 | 3
	Bdo Atom = 62 << 8 | 3
	Bgsound Atom = 65 << 8 | 7
	Big Atom = 72 << 8 | 3
	Blockquote Atom = 75 << 8 | 10
	Body Atom = 85 << 8 | 4
	Br Atom = 89 << 8 | 2
	Button Atom = 91 << 8 | 6
	Canvas Atom = 97 << 8 | 6
	Caption Atom = 103 << 8 | 7
	Center Atom = 110 << 8 | 6
	Cite Atom = 116 << 8 | 4
	Code Atom = 120 << 8 | 4
	Col Atom = 124 << 8 | 3
	Colgroup Atom = 127 << 8 | 8
	Data Atom = 135 << 8 | 4
	Datalist Atom = 139 << 8 | 8
	Dd Atom = 147 << 8 | 2
	Del Atom = 149 << 8 | 3
	Desc Atom = 152 << 8 | 4
	Details Atom = 156 << 8 | 7
	Dfn Atom = 163 << 8 | 3
	Dialog Atom = 166 << 8 | 6
	Dir Atom = 172 << 8 | 3
	Div Atom = 175 << 8 | 3
	Dl Atom = 178 << 8 | 2
	Dt Atom = 180 << 8 | 2
	Em Atom = 182 << 8 | 2
	Embed Atom = 184 << 8 | 5
	Fieldset Atom = 189 << 8 | 8
	Figcaption Atom = 197 << 8 | 10
	Figure Atom = 207 << 8 | 6
	Font Atom = 213 << 8 | 4
	Footer Atom = 217 << 8 | 6
	Foreignobject Atom = 223 << 8 | 13
	Form Atom = 236 << 8 | 4
	Frame Atom = 240 << 8 | 5
	Frameset Atom = 245 << 8 | 8
	H1 Atom = 253 << 8 | 2
	H2 Atom = 255 << 8 | 2
	H3 Atom = 257 << 8 | 2
	H4 Atom = 259 << 8 | 2
	H5 Atom = 261 << 8 | 2
	H6 Atom = 263 << 8 | 2
	Head Atom = 265 << 8 | 4
	Header Atom = 269 << 8 | 6
	Hgroup Atom = 275 << 8 | 6
	Hr Atom = 281 << 8 | 2
	Html Atom = 283 << 8 | 4
	I Atom = 287 << 8 | 1
	Iframe Atom = 288 << 8 | 6
	Image Atom = 294 << 8 | 5
	Img Atom = 299 << 8 | 3
	Input Atom = 302 << 8 | 5
	Ins Atom = 307 << 8 | 3
	Isindex Atom = 310 << 8 | 7
	Kbd Atom = 317 << 8 | 3
	Keygen Atom = 320 << 8 | 6
	Label Atom = 326 << 8 | 5
	Legend Atom = 331 << 8 | 6
	Li Atom = 337 << 8 | 2
	Link Atom = 339 << 8 | 4
	Listing Atom = 343 << 8 | 7
	Main Atom = 350 << 8 | 4
	Map Atom = 354 << 8 | 3
	Mark Atom = 357 << 8 | 4
	Marquee Atom = 361 << 8 | 7
	Math Atom = 368 << 8 | 4
	Menu Atom = 372 << 8 | 4
	Menuitem Atom = 376 << 8 | 8
	Meta Atom = 384 << 8 | 4
	Meter Atom = 388 << 8 | 5
	Mi Atom = 393 << 8 | 2
	Mn Atom = 395 << 8 | 2
	Mo Atom = 397 << 8 | 2
	Ms Atom = 399 << 8 | 2
	Mtext Atom = 401 << 8 | 5
	Nav Atom = 406 << 8 | 3
	Nobr Atom = 409 << 8 | 4
	Noembed Atom = 413 << 8 | 7
	Noframes Atom = 420 << 8 | 8
	Noscript Atom = 428 << 8 | 8
	Object Atom = 436 << 8 | 6
	Ol Atom = 442 << 8 | 2
	Optgroup Atom = 444 << 8 | 8
	Option Atom = 452 << 8 | 6
	Output Atom = 458 << 8 | 6
	P Atom = 464 << 8 | 1
	Param Atom = 465 << 8 | 5
	Picture Atom = 470 << 8 | 7
	Plaintext Atom = 477 << 8 | 9
	Pre Atom = 486 << 8 | 3
	Progress Atom = 489 << 8 | 8
	Q Atom = 497 << 8 | 1
	Rb Atom = 498 << 8 | 2
	Rp Atom = 500 << 8 | 2
	Rt Atom = 502 << 8 | 2
	Rtc Atom = 504 << 8 | 3
	Ruby Atom = 507 << 8 | 4
	S Atom = 511 << 8 | 1
	Samp Atom = 512 << 8 | 4
	Script Atom = 516 << 8 | 6
	Section Atom = 522 << 8 | 7
	Select Atom = 529 << 8 | 6
	Slot Atom = 535 << 8 | 4
	Small Atom = 539 << 8 | 5
	Source Atom = 544 << 8 | 6
	Span Atom = 550 << 8 | 4
	Strike Atom = 554 << 8 | 6
	Strong Atom = 560 << 8 | 6
	Style Atom = 566 << 8 | 5
	Sub Atom = 571 << 8 | 3
	Summary Atom = 574 << 8 | 7
	Sup Atom = 581 << 8 | 3
	Svg Atom = 584 << 8 | 3
	Table Atom = 587 << 8 | 5
	Tbody Atom = 592 << 8 | 5
	Td Atom = 597 << 8 | 2
	Template Atom = 599 << 8 | 8
	Textarea Atom = 607 << 8 | 8
	Tfoot Atom = 615 << 8 | 5
	Th Atom = 620 << 8 | 2
	Thead Atom = 622 << 8 | 5
	Time Atom = 627 << 8 | 4
	Title Atom = 631 << 8 | 5
	Tr Atom = 636 << 8 | 2
	Track Atom = 638 << 8 | 5
	Tt Atom = 643 << 8 | 2
	U Atom = 645 << 8 | 1
	Ul Atom = 646 << 8 | 2
	Var Atom = 648 << 8 | 3
	Video Atom = 651 << 8 | 5
	Wbr Atom = 656 << 8 | 3
	Xmp Atom = 659 << 8 | 3
	AnnotationXml Atom = 662 << 8 | 14
	Accept Atom = 676 << 8 | 6
	AcceptCharset Atom = 682 << 8 | 14
	Accesskey Atom = 696 << 8 | 9
	Action Atom = 705 << 8 | 6
	Align Atom = 711 << 8 | 5
	Alink Atom = 716 << 8 | 5
	Allow Atom = 721 << 8 | 5
	Allowfullscreen Atom = 726 << 8 | 15
	Allowpaymentrequest Atom = 741 << 8 | 19
	Alt Atom = 760 << 8 | 3
	And Atom = 763 << 8 | 3
	Approved Atom = 766 << 8 | 8
	Async Atom = 774 << 8 | 5
	Autocapitalize Atom = 779 << 8 | 14
	Autocomplete Atom = 793 << 8 | 12
	Autofocus Atom = 805 << 8 | 9
	Autoplay Atom = 814 << 8 | 8
	Background Atom = 822 << 8 | 10
	Bgcolor Atom = 832 << 8 | 7
	Border Atom = 839 << 8 | 6
	Capture Atom = 845 << 8 | 7
	Cellpadding Atom = 852 << 8 | 11
	Cellspacing Atom = 863 << 8 | 11
	Challenge Atom = 874 << 8 | 9
	Charset Atom = 883 << 8 | 7
	Checked Atom = 890 << 8 | 7
	Class Atom = 897 << 8 | 5
	Classid Atom = 902 << 8 | 7
	Codebase Atom = 909 << 8 | 8
	Color Atom = 917 << 8 | 5
	Cols Atom = 922 << 8 | 4
	Colspan Atom = 926 << 8 | 7
	Content Atom = 933 << 8 | 7
	Contenteditable Atom = 940 << 8 | 15
	Contextmenu Atom = 955 << 8 | 11
	Controls Atom = 966 << 8 | 8
	Coords Atom = 974 << 8 | 6
	Crossorigin Atom = 980 << 8 | 11
	Datetime Atom = 991 << 8 | 8
	Declare Atom = 999 << 8 | 7
	Default Atom = 1006 << 8 | 7
	Defer Atom = 1013 << 8 | 5
	Dirname Atom = 1018 << 8 | 7
	Disabled Atom = 1025 << 8 | 8
	Download Atom = 1033 << 8 | 8
	Draggable Atom = 1041 << 8 | 9
	Dropzone Atom = 1050 << 8 | 8
	Enctype Atom = 1058 << 8 | 7
	Encoding Atom = 1065 << 8 | 8
	Face Atom = 1073 << 8 | 4
	For Atom = 1077 << 8 | 3
	Formaction Atom = 1080 << 8 | 10
	Formenctype Atom = 1090 << 8 | 11
	Formmethod Atom = 1101 << 8 | 10
	Formnovalidate Atom = 1111 << 8 | 14
	Formtarget Atom = 1125 << 8 | 10
	Headers Atom = 1135 << 8 | 7
	Height Atom = 1142 << 8 | 6
	Hidden Atom = 1148 << 8 | 6
	High Atom = 1154 << 8 | 4
	Href Atom = 1158 << 8 | 4
	Hreflang Atom = 1162 << 8 | 8
	HttpEquiv Atom = 1170 << 8 | 10
	Icon Atom = 1180 << 8 | 4
	Id Atom = 1184 << 8 | 2
	Importance Atom = 1186 << 8 | 10
	Inputmode Atom = 1196 << 8 | 9
	Integrity Atom = 1205 << 8 | 9
	Is Atom = 1214 << 8 | 2
	Ismap Atom = 1216 << 8 | 5
	Itemid Atom = 1221 << 8 | 6
	Itemprop Atom = 1227 << 8 | 8
	Itemref Atom = 1235 << 8 | 7
	Itemscope Atom = 1242 << 8 | 9
	Itemtype Atom = 1251 << 8 | 8
	Keytype Atom = 1259 << 8 | 7
	Kind Atom = 1266 << 8 | 4
	Lang Atom = 1270 << 8 | 4
	Language Atom = 1274 << 8 | 8
	List Atom = 1282 << 8 | 4
	Loading Atom = 1286 << 8 | 7
	Longdesc Atom = 1293 << 8 | 8
	Loop Atom = 1301 << 8 | 4
	Low Atom = 1305 << 8 | 3
	Manifest Atom = 1308 << 8 | 8
	Marginheight Atom = 1316 << 8 | 12
	Marginwidth Atom = 1328 << 8 | 11
	Max Atom = 1339 << 8 | 3
	Maxlength Atom = 1342 << 8 | 9
	Media Atom = 1351 << 8 | 5
	Mediagroup Atom = 1356 << 8 | 10
	Method Atom = 1366 << 8 | 6
	Min Atom = 1372 << 8 | 3
	Minlength Atom = 1375 << 8 | 9
	Multiple Atom = 1384 << 8 | 8
	Muted Atom = 1392 << 8 | 5
	Name Atom = 1397 << 8 | 4
	Nohref Atom = 1401 << 8 | 6
	Nomodule Atom = 1407 << 8 | 8
	Nonce Atom = 1415 << 8 | 5
	Noresize Atom = 1420 << 8 | 8
	Noshade Atom = 1428 << 8 | 7
	Novalidate Atom = 1435 << 8 | 10
	Nowrap Atom = 1445 << 8 | 6
	Open Atom = 1451 << 8 | 4
	Optimum Atom = 1455 << 8 | 7
	Pattern Atom = 1462 << 8 | 7
	Ping Atom = 1469 << 8 | 4
	Placeholder Atom = 1473 << 8 | 11
	Playsinline Atom = 1484 << 8 | 11
	Poster Atom = 1495 << 8 | 6
	Preload Atom = 1501 << 8 | 7
	Profile Atom = 1508 << 8 | 7
	Radiogroup Atom = 1515 << 8 | 10
	Readonly Atom = 1525 << 8 | 8
	Referrerpolicy Atom = 1533 << 8 | 14
	Rel Atom = 1547 << 8 | 3
	Required Atom = 1550 << 8 | 8
	Rev Atom = 1558 << 8 | 3
	Reversed Atom = 1561 << 8 | 8
	Rows Atom = 1569 << 8 | 4
	Rowspan Atom = 1573 << 8 | 7
	Sandbox Atom = 1580 << 8 | 7
	Scheme Atom = 1587 << 8 | 6
	Scope Atom = 1593 << 8 | 5
	Scoped Atom = 1598 << 8 | 6
	Scrolling Atom = 1604 << 8 | 9
	Seamless Atom = 1613 << 8 | 8
	Selected Atom = 1621 << 8 | 8
	Shape Atom = 1629 << 8 | 5
	Size Atom = 1634 << 8 | 4
	Sizes Atom = 1638 << 8 | 5
	Spellcheck Atom = 1643 << 8 | 10
	Src Atom = 1653 << 8 | 3
	Srcdoc Atom = 1656 << 8 | 6
	Srclang Atom = 1662 << 8 | 7
	Srcset Atom = 1669 << 8 | 6
	Standby Atom = 1675 << 8 | 7
	Start Atom = 1682 << 8 | 5
	Step Atom = 1687 << 8 | 4
	Tabindex Atom = 1691 << 8 | 8
	Target Atom = 1699 << 8 | 6
	Translate Atom = 1705 << 8 | 9
	Type Atom = 1714 << 8 | 4
	Typemustmatch Atom = 1718 << 8 | 13
	Usemap Atom = 1731 << 8 | 6
	Valign Atom = 1737 << 8 | 6
	Value Atom = 1743 << 8 | 5
	Valuetype Atom = 1748 << 8 | 9
	Version Atom = 1757 << 8 | 7
	Width Atom = 1764 << 8 | 5
	Wrap Atom = 1769 << 8 | 4
	Xmlns Atom = 1773 << 8 | 5
	XlinkActuate Atom = 1778 << 8 | 13
	XlinkArcrole Atom = 1791 << 8 | 13
	XlinkHref Atom = 1804 << 8 | 10
	XlinkRole Atom = 1814 << 8 | 10
	XlinkShow Atom = 1824 << 8 | 10
	XlinkTitle Atom = 1834 << 8 | 11
	XlinkType Atom = 1845 << 8 | 10
	XmlBase Atom = 1855 << 8 | 8
	XmlLang Atom = 1863 << 8 | 8
	XmlSpace Atom = 1871 << 8 | 9
	TextHtml Atom = 1880 << 8 | 9
	ApplicationXhtmlXml Atom = 1889 << 8 | 21
)
