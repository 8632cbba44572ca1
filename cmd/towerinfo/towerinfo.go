// Command towerinfo reports the vector capabilities of the current CPU and, optionally, checks
// the packed field arithmetic against the scalar fields.
package main

import (
	"flag"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/codahale/towerfield"
	"github.com/codahale/towerfield/tower"
	"github.com/goccy/go-json"
	"github.com/klauspost/cpuid/v2"
)

type report struct {
	CPU      string            `json:"cpu"`
	GFNI     bool              `json:"gfni"`
	MaxWidth int               `json:"maxWidth"`
	Fields   map[string]string `json:"fields"`
	Check    *checkResult      `json:"check,omitempty"`
}

type checkResult struct {
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

func main() {
	log := slog.New(slog.Default().Handler())

	asJSON := flag.Bool("json", false, "print the report as JSON")
	check := flag.Bool("check", false, "check the packed arithmetic against the scalar fields")
	flag.Parse()

	c := towerfield.DetectCapability()
	r := report{
		CPU:      cpuid.CPU.BrandName,
		GFNI:     c.GFNI,
		MaxWidth: int(c.MaxWidth),
		Fields: map[string]string{
			"BinaryField8b":     towerfield.StrategyFor(8, false).String(),
			"BinaryField16b":    towerfield.StrategyFor(16, false).String(),
			"BinaryField32b":    towerfield.StrategyFor(32, false).String(),
			"BinaryField64b":    towerfield.StrategyFor(64, false).String(),
			"BinaryField128b":   towerfield.StrategyFor(128, false).String(),
			"AESTowerField8b":   towerfield.StrategyFor(8, true).String(),
			"AESTowerField16b":  towerfield.StrategyFor(16, true).String(),
			"AESTowerField32b":  towerfield.StrategyFor(32, true).String(),
			"AESTowerField64b":  towerfield.StrategyFor(64, true).String(),
			"AESTowerField128b": towerfield.StrategyFor(128, true).String(),
		},
	}

	if *check {
		r.Check = selfCheck()
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			log.Error("error writing report", "err", err)
			os.Exit(1)
		}
	} else {
		logReport(log, r)
	}

	if r.Check != nil && !r.Check.Passed {
		os.Exit(1)
	}
}

// logReport logs r, with the fields in name order.
func logReport(log *slog.Logger, r report) {
	log.Info("capability", "cpu", r.CPU, "gfni", r.GFNI, "maxWidth", r.MaxWidth)
	for _, name := range slices.Sorted(maps.Keys(r.Fields)) {
		log.Info("field", "name", name, "strategy", r.Fields[name])
	}
	if r.Check != nil {
		for _, f := range r.Check.Failures {
			log.Error("check failed", "check", f)
		}
		log.Info("self-check", "passed", r.Check.Passed)
	}
}

func selfCheck() *checkResult {
	var failures []string

	for b := range 256 {
		x := byte(b)
		if towerfield.ApplyMap(towerfield.AESToTowerMap, towerfield.ApplyMap(towerfield.TowerToAESMap, x)) != x {
			failures = append(failures, "basis round trip")
			break
		}
	}

	a, b := make([]byte, 256*256), make([]byte, 256*256)
	for i := range a {
		a[i], b[i] = byte(i>>8), byte(i)
	}

	if !checkMul[tower.BinaryField8b](a, b) {
		failures = append(failures, "tower multiply")
	}

	if !checkMul[tower.AESTowerField8b](a, b) {
		failures = append(failures, "AES multiply")
	}

	if !checkInvert[tower.BinaryField8b](b[:256]) {
		failures = append(failures, "tower invert")
	}

	if !checkInvert[tower.AESTowerField8b](b[:256]) {
		failures = append(failures, "AES invert")
	}

	return &checkResult{Passed: len(failures) == 0, Failures: failures}
}

func checkMul[F tower.Field[F]](a, b []byte) bool {
	dst := make([]byte, len(a))
	towerfield.MulBytes[F](dst, a, b)
	for i := range dst {
		x, y := tower.FromUint64[F](uint64(a[i])), tower.FromUint64[F](uint64(b[i]))
		if tower.FromUint64[F](uint64(dst[i])) != x.Mul(y) {
			return false
		}
	}
	return true
}

func checkInvert[F tower.Field[F]](a []byte) bool {
	dst := make([]byte, len(a))
	towerfield.InvertBytes[F](dst, a)
	for i := range dst {
		if tower.FromUint64[F](uint64(dst[i])) != tower.FromUint64[F](uint64(a[i])).InvertOrZero() {
			return false
		}
	}
	return true
}
