package palette

import "github.com/studworks/brixel/internal/chroma"

// classicEntries is the built-in brick palette in its publication order.
// Catalog ids are not monotonic; the order below is the authoritative one
// for tie-breaking.
var classicEntries = []Entry{
	{1, "white", mustHex("#ffffff")},
	{2, "grey", mustHex("#DDDEDD")},
	{5, "brick yellow", mustHex("#D9BB7B")},
	{18, "nougat", mustHex("#D67240")},
	{21, "bright red", mustHex("#ff0000")},
	{23, "bright blue", mustHex("#0000ff")},
	{24, "bright yellow", mustHex("#Ffff00")},
	{26, "black", mustHex("#000000")},
	{28, "dark green", mustHex("#009900")},
	{37, "bright green", mustHex("#00cc00")},
	{38, "dark orange", mustHex("#A83D15")},
	{102, "medium blue", mustHex("#478CC6")},
	{106, "bright orange", mustHex("#ff6600")},
	{107, "bright bluish green", mustHex("#059D9E")},
	{119, "bright yellowish-green", mustHex("#95B90B")},
	{124, "bright reddish violet", mustHex("#990066")},
	{135, "sand blue", mustHex("#5E748C")},
	{138, "sand yellow", mustHex("#8D7452")},
	{140, "earth blue", mustHex("#002541")},
	{141, "earth green", mustHex("#003300")},
	{151, "sand green", mustHex("#5F8265")},
	{154, "dark red", mustHex("#80081B")},
	{191, "flame yellowish orange", mustHex("#F49B00")},
	{192, "reddish brown", mustHex("#5B1C0C")},
	{194, "medium stone grey", mustHex("#9C9291")},
	{199, "dark stone grey", mustHex("#4C5156")},
	{208, "light stone grey", mustHex("#E4E4DA")},
	{212, "light royal blue", mustHex("#87C0EA")},
	{221, "bright purple", mustHex("#DE378B")},
	{222, "light purple", mustHex("#EE9DC3")},
	{226, "cool yellow", mustHex("#FFFF99")},
	{268, "dark purple", mustHex("#2C1577")},
	{283, "light nougat", mustHex("#F5C189")},
	{308, "dark brown", mustHex("#300F06")},
	{312, "medium nougat", mustHex("#AA7D55")},
	{321, "dark azur", mustHex("#469bc3")},
	{322, "medium azur", mustHex("#68c3e2")},
	{323, "aqua", mustHex("#d3f2ea")},
	{324, "medium lavender", mustHex("#a06eb9")},
	{325, "lavender", mustHex("#cda4de")},
	{329, "white glow", mustHex("#f5f3d7")},
	{326, "spring yellowish green", mustHex("#e2f99a")},
	{330, "olive green", mustHex("#77774E")},
	{331, "medium-yellowish green", mustHex("#96B93B")},
}

// Classic returns the built-in 44-color brick palette. Every call builds a
// fresh Palette.
func Classic() *Palette {
	p, err := New(classicEntries)
	if err != nil {
		panic(err)
	}
	return p
}

func mustHex(s string) chroma.Color {
	c, err := chroma.FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
