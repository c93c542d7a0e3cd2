// Package charset holds the PETSCII character and token tables shared by the
// escape normalizer and the line scanner: petcat escape tokens, shifted and
// Commodore-key escape tokens, the Commodore BASIC V2 keyword tokens, and the
// map from Ahoy magazine notation to petcat notation.
//
// All tables assume lower-cased listing text, matching the magazine
// convention (PETSCII has a single reachable letter case).
package charset

// Byte values with special meaning to the scanner and checksum algorithms.
const (
	Space = 32  // skipped by the checksum algorithms (see pkgs/checksum)
	Quote = 34  // toggles string-literal state
	Rem   = 143 // REM token; disables keyword matching for the rest of a line
)

// Token pairs an escape or keyword spelling with the single PETSCII byte it
// encodes to.
type Token struct {
	Text string
	Code byte
}

// PetcatTokens lists the petcat-style escape tokens for PETSCII control
// codes and the symbols a modern keyboard cannot type directly. Tried first
// by the scanner, in all states.
var PetcatTokens = []Token{
	// cursor, screen and editing controls
	{"{down}", 17},
	{"{up}", 145},
	{"{rght}", 29},
	{"{left}", 157},
	{"{home}", 19},
	{"{clr}", 147},
	{"{inst}", 148},
	{"{del}", 20},
	{"{rvon}", 18},
	{"{rvof}", 146},

	// color controls
	{"{blk}", 144},
	{"{wht}", 5},
	{"{red}", 28},
	{"{cyn}", 159},
	{"{pur}", 156},
	{"{grn}", 30},
	{"{blu}", 31},
	{"{yel}", 158},
	{"{orng}", 129},
	{"{brn}", 149},
	{"{lred}", 150},
	{"{gry1}", 151},
	{"{gry2}", 152},
	{"{lgrn}", 153},
	{"{lblu}", 154},
	{"{gry3}", 155},

	// function keys
	{"{f1}", 133},
	{"{f2}", 137},
	{"{f3}", 134},
	{"{f4}", 138},
	{"{f5}", 135},
	{"{f6}", 139},
	{"{f7}", 136},
	{"{f8}", 140},

	// keys with no modern equivalent
	{"{sspc}", 160},
	{"{ep}", 92},
	{"{up_arrow}", 94},
	{"{left_arrow}", 95},
	{"{pi}", 255},
}

// ShiftCommodoreTokens lists the {s x} / {c x} escapes Ahoy used for
// Shift-key and Commodore-key entries before November 1984. Tried after
// PetcatTokens, in all states.
var ShiftCommodoreTokens = []Token{
	{"{s a}", 193},
	{"{s b}", 194},
	{"{s c}", 195},
	{"{s d}", 196},
	{"{s e}", 197},
	{"{s f}", 198},
	{"{s g}", 199},
	{"{s h}", 200},
	{"{s i}", 201},
	{"{s j}", 202},
	{"{s k}", 203},
	{"{s l}", 204},
	{"{s m}", 205},
	{"{s n}", 206},
	{"{s o}", 207},
	{"{s p}", 208},
	{"{s q}", 209},
	{"{s r}", 210},
	{"{s s}", 211},
	{"{s t}", 212},
	{"{s u}", 213},
	{"{s v}", 214},
	{"{s w}", 215},
	{"{s x}", 216},
	{"{s y}", 217},
	{"{s z}", 218},
	{"{s *}", 192},
	{"{s +}", 219},
	{"{s -}", 221},
	{"{s @}", 186},
	{"{s ep}", 169},
	{"{s return}", 141},
	{"{s space}", 160},
	{"{s up_arrow}", 222},

	{"{c a}", 176},
	{"{c b}", 191},
	{"{c c}", 188},
	{"{c d}", 172},
	{"{c e}", 177},
	{"{c f}", 187},
	{"{c g}", 165},
	{"{c h}", 180},
	{"{c i}", 162},
	{"{c j}", 181},
	{"{c k}", 161},
	{"{c l}", 182},
	{"{c m}", 167},
	{"{c n}", 170},
	{"{c o}", 185},
	{"{c p}", 175},
	{"{c q}", 171},
	{"{c r}", 178},
	{"{c s}", 174},
	{"{c t}", 163},
	{"{c u}", 184},
	{"{c v}", 190},
	{"{c w}", 179},
	{"{c x}", 189},
	{"{c y}", 183},
	{"{c z}", 173},
	{"{c @}", 164},
	{"{c +}", 166},
	{"{c -}", 220},
	{"{c ep}", 168},
}

// BasicTokens lists the Commodore BASIC V2 keyword and operator tokens in
// interpreter token order. That order already keeps every entry sharing a
// prefix ahead of its shorter form (input# before input, print# before
// print, go last), which the scanner's first-match rule depends on.
var BasicTokens = []Token{
	{"end", 128},
	{"for", 129},
	{"next", 130},
	{"data", 131},
	{"input#", 132},
	{"input", 133},
	{"dim", 134},
	{"read", 135},
	{"let", 136},
	{"goto", 137},
	{"run", 138},
	{"if", 139},
	{"restore", 140},
	{"gosub", 141},
	{"return", 142},
	{"rem", 143},
	{"stop", 144},
	{"on", 145},
	{"wait", 146},
	{"load", 147},
	{"save", 148},
	{"verify", 149},
	{"def", 150},
	{"poke", 151},
	{"print#", 152},
	{"print", 153},
	{"cont", 154},
	{"list", 155},
	{"clr", 156},
	{"cmd", 157},
	{"sys", 158},
	{"open", 159},
	{"close", 160},
	{"get", 161},
	{"new", 162},
	{"tab(", 163},
	{"to", 164},
	{"fn", 165},
	{"spc(", 166},
	{"then", 167},
	{"not", 168},
	{"step", 169},
	{"+", 170},
	{"-", 171},
	{"*", 172},
	{"/", 173},
	{"^", 174},
	{"and", 175},
	{"or", 176},
	{">", 177},
	{"=", 178},
	{"<", 179},
	{"sgn", 180},
	{"int", 181},
	{"abs", 182},
	{"usr", 183},
	{"fre", 184},
	{"pos", 185},
	{"sqr", 186},
	{"rnd", 187},
	{"log", 188},
	{"exp", 189},
	{"cos", 190},
	{"sin", 191},
	{"tan", 192},
	{"atn", 193},
	{"peek", 194},
	{"len", 195},
	{"str$", 196},
	{"val", 197},
	{"asc", 198},
	{"chr$", 199},
	{"left$", 200},
	{"right$", 201},
	{"mid$", 202},
	{"go", 203},
}

// AhoyToPetcat maps Ahoy magazine escape notation, upper-cased and including
// the braces, to the canonical petcat token. Two-letter codes are the
// post-October-1984 convention; the long names appeared in earlier issues.
var AhoyToPetcat = map[string]string{
	// short codes
	"{BK}": "{blk}",
	"{WH}": "{wht}",
	"{RD}": "{red}",
	"{CY}": "{cyn}",
	"{PU}": "{pur}",
	"{GN}": "{grn}",
	"{BL}": "{blu}",
	"{YL}": "{yel}",
	"{OR}": "{orng}",
	"{BR}": "{brn}",
	"{LR}": "{lred}",
	"{G1}": "{gry1}",
	"{G2}": "{gry2}",
	"{LG}": "{lgrn}",
	"{LB}": "{lblu}",
	"{G3}": "{gry3}",
	"{CD}": "{down}",
	"{CU}": "{up}",
	"{CR}": "{rght}",
	"{CL}": "{left}",
	"{HM}": "{home}",
	"{SC}": "{clr}",
	"{IN}": "{inst}",
	"{RV}": "{rvon}",
	"{RO}": "{rvof}",
	"{SS}": "{sspc}",

	// long names from early issues
	"{BLACK}":   "{blk}",
	"{WHITE}":   "{wht}",
	"{RED}":     "{red}",
	"{CYAN}":    "{cyn}",
	"{PURPLE}":  "{pur}",
	"{GREEN}":   "{grn}",
	"{BLUE}":    "{blu}",
	"{YELLOW}":  "{yel}",
	"{ORANGE}":  "{orng}",
	"{BROWN}":   "{brn}",
	"{LTRED}":   "{lred}",
	"{GRAY1}":   "{gry1}",
	"{GRAY2}":   "{gry2}",
	"{LTGREEN}": "{lgrn}",
	"{LTBLUE}":  "{lblu}",
	"{GRAY3}":   "{gry3}",
	"{DOWN}":    "{down}",
	"{UP}":      "{up}",
	"{RIGHT}":   "{rght}",
	"{LEFT}":    "{left}",
	"{HOME}":    "{home}",
	"{CLEAR}":   "{clr}",
	"{INSERT}":  "{inst}",
	"{RVSON}":   "{rvon}",
	"{RVSOFF}":  "{rvof}",
}
