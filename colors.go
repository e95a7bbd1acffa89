package minichart

import (
	"math/rand"
	"sync"
	"time"
)

// ColorSource gives the fill color of the item at a given index of a
// dataset when the item does not carry its own color.
type ColorSource interface {
	Color(int) string
}

type Palette []string

func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return DefaultLineColor
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

const hexdigits = "0123456789ABCDEF"

// RandomColors picks a random color the first time an index is asked
// and gives the same color for that index afterwards.
type RandomColors struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	cache map[int]string
}

func NewRandomColors(seed int64) *RandomColors {
	return &RandomColors{
		rnd:   rand.New(rand.NewSource(seed)),
		cache: make(map[int]string),
	}
}

func defaultColors() ColorSource {
	return NewRandomColors(time.Now().UnixNano())
}

func (r *RandomColors) Color(i int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.cache[i]; ok {
		return c
	}
	c := r.random()
	r.cache[i] = c
	return c
}

func (r *RandomColors) random() string {
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i := 1; i < len(buf); i++ {
		buf[i] = hexdigits[r.rnd.Intn(len(hexdigits))]
	}
	return string(buf)
}
