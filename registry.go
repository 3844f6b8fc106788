package spacecurve

// curveEntry describes one curve type registered with this package: its
// lookup key, display metadata, and the pair of functions needed to
// pre-validate a (dimension, size) shape and then construct the curve
// from it.
type curveEntry struct {
	key          string
	display      string
	constraints  string
	experimental bool
	buildSpec    func(dimension, size uint32) (GridSpec, error)
	construct    func(spec GridSpec) (SpaceCurve, error)
}

func vHilbert(dimension, size uint32) (GridSpec, error) {
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return GridSpec{}, err
	}
	order, _ := spec.Order()
	if uint64(order)*uint64(dimension) >= 32 {
		return GridSpec{}, sizeErrorf("Hilbert requires order * dimension < 32 for uint32 indices")
	}
	return spec, nil
}

func vHCurve(dimension, size uint32) (GridSpec, error) {
	if dimension < 2 {
		return GridSpec{}, shapeErrorf("dimension must be >= 2")
	}
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return GridSpec{}, err
	}
	if dimension >= 32 {
		return GridSpec{}, shapeErrorf("dimension must be < 32")
	}
	order, _ := spec.Order()
	if uint64(order)*uint64(dimension) >= 32 {
		return GridSpec{}, sizeErrorf("curve size exceeds uint32 limits (order * dimension must be < 32)")
	}
	return spec, nil
}

func vZOrder(dimension, size uint32) (GridSpec, error) {
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return GridSpec{}, err
	}
	if err := spec.RequireIndexBitsLt(32); err != nil {
		return GridSpec{}, err
	}
	return spec, nil
}

func vOnion(dimension, size uint32) (GridSpec, error) {
	return NewGridSpec(dimension, size)
}

func vHairyOnion(dimension, size uint32) (GridSpec, error) {
	return NewGridSpec(dimension, size)
}

func vScan(dimension, size uint32) (GridSpec, error) {
	return NewGridSpec(dimension, size)
}

func vGray(dimension, size uint32) (GridSpec, error) {
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return GridSpec{}, err
	}
	bits, _ := spec.BitsPerAxis()
	if uint64(bits)*uint64(dimension) >= 32 {
		return GridSpec{}, sizeErrorf("Gray requires bitwidth * dimension < 32 for uint32 indices")
	}
	return spec, nil
}

func cHilbert(spec GridSpec) (SpaceCurve, error) { return NewHilbert(spec.Dimension(), spec.Size()) }
func cHCurve(spec GridSpec) (SpaceCurve, error)  { return NewHCurve(spec.Dimension(), spec.Size()) }
func cZOrder(spec GridSpec) (SpaceCurve, error)  { return NewZOrder(spec.Dimension(), spec.Size()) }
func cOnion(spec GridSpec) (SpaceCurve, error) {
	return NewOnionCurve(spec.Dimension(), spec.Size())
}
func cHairyOnion(spec GridSpec) (SpaceCurve, error) {
	return NewHairyOnion(spec.Dimension(), spec.Size())
}
func cScan(spec GridSpec) (SpaceCurve, error) { return NewScan(spec.Dimension(), spec.Size()) }
func cGray(spec GridSpec) (SpaceCurve, error) { return NewGray(spec.Dimension(), spec.Size()) }

// curveNames and registry are two views onto the same token list; keep
// them in lockstep by hand (init panics at startup if they drift, and
// TestRegistryConsistency in registry_test.go checks the same).
var curveNames = []string{
	"hilbert",
	"scan",
	"zorder",
	"hcurve",
	"onion",
	"hairyonion",
	"gray",
}

var registry = []curveEntry{
	{key: "hilbert", display: "Hilbert", constraints: "size=2^order; order*dimension < 32 (uint32 indices)", experimental: false, buildSpec: vHilbert, construct: cHilbert},
	{key: "scan", display: "Scan", constraints: "any size>=1; any dimension>=1", experimental: false, buildSpec: vScan, construct: cScan},
	{key: "zorder", display: "Z-order (Morton)", constraints: "size=2^bitwidth; bitwidth*dimension < 32 (uint32 indices)", experimental: false, buildSpec: vZOrder, construct: cZOrder},
	{key: "hcurve", display: "H-curve", constraints: "dimension>=2; size=2^order; order*dimension < 32", experimental: false, buildSpec: vHCurve, construct: cHCurve},
	{key: "onion", display: "Onion", constraints: "any size>=1; any dimension>=1; length=size^dimension fits uint32", experimental: false, buildSpec: vOnion, construct: cOnion},
	{key: "hairyonion", display: "Hairy Onion", constraints: "any size>=1; any dimension>=1; length=size^dimension fits uint32", experimental: true, buildSpec: vHairyOnion, construct: cHairyOnion},
	{key: "gray", display: "Gray (BRGC)", constraints: "size=2^bitwidth; bitwidth*dimension < 32 (uint32 indices)", experimental: false, buildSpec: vGray, construct: cGray},
}

func init() {
	if len(curveNames) != len(registry) {
		panic("spacecurve: curveNames and registry differ in length")
	}
	for i, name := range curveNames {
		if registry[i].key != name {
			panic("spacecurve: curveNames and registry differ at " + name)
		}
	}
}

// CurveNames returns the registered curve keys, optionally including
// experimental entries.
func CurveNames(includeExperimental bool) []string {
	names := make([]string, 0, len(registry))
	for _, entry := range registry {
		if includeExperimental || !entry.experimental {
			names = append(names, entry.key)
		}
	}
	return names
}

// findEntry looks up a registry entry by key (case-sensitive).
func findEntry(key string) (curveEntry, bool) {
	for _, entry := range registry {
		if entry.key == key {
			return entry, true
		}
	}
	return curveEntry{}, false
}

// Validate checks whether key names a registered curve and whether
// dimension/size satisfy its shape requirements, without constructing it.
func Validate(key string, dimension, size uint32) error {
	entry, ok := findEntry(key)
	if !ok {
		return unknownErrorf("unknown pattern: %q", key)
	}
	_, err := entry.buildSpec(dimension, size)
	return err
}

// Construct builds a curve by key after validating dimension/size via the
// registry.
func Construct(key string, dimension, size uint32) (SpaceCurve, error) {
	entry, ok := findEntry(key)
	if !ok {
		return nil, unknownErrorf("unknown pattern: %q", key)
	}
	spec, err := entry.buildSpec(dimension, size)
	if err != nil {
		return nil, err
	}
	return entry.construct(spec)
}
