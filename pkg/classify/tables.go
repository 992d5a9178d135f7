package classify

// Tag identifies a language bucket. The same value selects the
// destination folder a sorted repository is filed under.
type Tag string

const (
	Python     Tag = "Python"
	Go         Tag = "Go"
	JavaScript Tag = "JavaScript"
	Rust       Tag = "Rust"
	Java       Tag = "Java"
	C          Tag = "C"
	Ruby       Tag = "Ruby"
	PHP        Tag = "PHP"
	Swift      Tag = "Swift"

	// Other is the sentinel returned when nothing scores above zero
	// or an override value is not recognized.
	Other Tag = "Other"
)

// Priority is the fixed evaluation order for picking a winner.
// An earlier tag keeps the lead unless a later tag scores strictly
// higher, so ties resolve to the earliest tag in this list.
var Priority = []Tag{Python, Go, JavaScript, Rust, Java, C, Ruby, PHP, Swift}

// extMapping ties a file extension to the tag its count feeds.
type extMapping struct {
	Ext string
	Tag Tag
}

// extTable maps extensions to tags. Extensions sharing a tag
// (JavaScript, C) sum into a single score.
var extTable = []extMapping{
	{".py", Python},
	{".go", Go},
	{".js", JavaScript},
	{".jsx", JavaScript},
	{".ts", JavaScript},
	{".tsx", JavaScript},
	{".rs", Rust},
	{".java", Java},
	{".c", C},
	{".cpp", C},
	{".cc", C},
	{".h", C},
	{".hpp", C},
	{".rb", Ruby},
	{".php", PHP},
	{".swift", Swift},
}

// MarkerBonus is the score added for each marker file found at the
// repository root. The weight is part of the observable contract;
// do not tune it.
const MarkerBonus = 10

// Marker ties a root-level filename to the tag it boosts.
type Marker struct {
	File string
	Tag  Tag
}

// markerTable lists marker files in check order. Every entry is
// checked independently and every present marker adds its own bonus,
// so a root carrying requirements.txt, setup.py and pyproject.toml
// collects the Python bonus three times.
var markerTable = []Marker{
	{"package.json", JavaScript},
	{"requirements.txt", Python},
	{"setup.py", Python},
	{"pyproject.toml", Python},
	{"go.mod", Go},
	{"Cargo.toml", Rust},
	{"pom.xml", Java},
	{"build.gradle", Java},
	{"Gemfile", Ruby},
	{"composer.json", PHP},
	{"Package.swift", Swift},
}

// aliasTable normalizes caller-supplied override values. Lookup is
// case-insensitive; anything missing from this table is Other.
var aliasTable = map[string]Tag{
	"python":     Python,
	"py":         Python,
	"go":         Go,
	"golang":     Go,
	"javascript": JavaScript,
	"js":         JavaScript,
	"typescript": JavaScript,
	"ts":         JavaScript,
	"node":       JavaScript,
	"rust":       Rust,
	"rs":         Rust,
	"java":       Java,
	"c":          C,
	"c++":        C,
	"cpp":        C,
	"ruby":       Ruby,
	"rb":         Ruby,
	"php":        PHP,
	"swift":      Swift,
}
