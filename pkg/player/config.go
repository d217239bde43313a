package player

import (
	"time"

	"github.com/zeromicro/go-zero/core/conf"
)

type Config struct {
	// MaxDepth caps iterative deepening.
	MaxDepth int `json:",default=9"`
	// TimeBudget is advisory; the first depth always completes.
	TimeBudget time.Duration `json:",default=1s"`
	MaxNodes   int64         `json:",optional"`
	// Debug validates the reduced graph before every search.
	Debug bool `json:",optional"`
	// Seed fixes the fallback RNG; zero seeds from the clock.
	Seed uint64 `json:",optional"`
}

func LoadConfig(path string) (c Config, err error) {
	err = conf.Load(path, &c)
	return
}

func DefaultConfig() (c Config) {
	if err := conf.FillDefault(&c); err != nil {
		panic(err)
	}
	return
}
