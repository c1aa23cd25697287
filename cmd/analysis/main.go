//go:build analysis

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"Dilithium-Signature/dilithium"
	"Dilithium-Signature/measureutil"
	"Dilithium-Signature/prof"
	"Dilithium-Signature/ringq"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	IQR    float64 `json:"iqr"`
}

// ------------------------------ stats utilities ------------------------------

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	q1 := quantileSorted(cp, 0.25)
	q3 := quantileSorted(cp, 0.75)
	return summaryStats{
		Count: n, Mean: m, Std: std,
		Min: cp[0], Q1: q1, Median: quantileSorted(cp, 0.5), Q3: q3, Max: cp[n-1],
		IQR: q3 - q1,
	}
}

func quantileSorted(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return sorted[l]
	}
	w := pos - float64(l)
	return sorted[l]*(1-w) + sorted[r]*w
}

func computeHistogram(values []float64, nbins int) ([]float64, []int) {
	minv, maxv := values[0], values[0]
	for _, v := range values {
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	if minv == maxv {
		maxv = minv + 1
	}
	edges := make([]float64, nbins+1)
	width := (maxv - minv) / float64(nbins)
	for i := range edges {
		edges[i] = minv + float64(i)*width
	}
	counts := make([]int, nbins)
	for _, v := range values {
		b := int((v - minv) / width)
		if b >= nbins {
			b = nbins - 1
		}
		counts[b]++
	}
	return edges, counts
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, nbins int) *charts.Bar {
	stats := computeStats(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.1f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f, IQR=%.3f",
		stats.Count, stats.Mean, stats.Std, stats.Median, stats.IQR)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// centered maps a canonical coefficient into (-Q/2, Q/2].
func centered(c uint32) float64 {
	v := int64(c)
	if v > ringq.Q/2 {
		v -= ringq.Q
	}
	return float64(v)
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ------------------------------- main routine -------------------------------

func main() {
	runs := flag.Int("runs", 50, "number of messages to sign")
	level := flag.Int("level", 2, "security level: 2, 3 or 5")
	outDir := flag.String("out", "Analysis_Reports", "output directory for reports")
	flag.Parse()

	scheme, err := dilithium.New(*level)
	if err != nil {
		log.Fatalf("new scheme: %v", err)
	}
	pub, _, err := scheme.KeyGen()
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}

	var zCoeffs []float64
	var challengePos []float64
	var plusCount, minusCount int
	for i := 0; i < *runs; i++ {
		msg := []byte(fmt.Sprintf("analysis message %d", i))
		sig, err := scheme.Sign(msg, dilithium.DefaultMaxAttempts)
		if err != nil {
			log.Fatalf("sign run %d: %v", i, err)
		}
		if !scheme.Verify(msg, sig, pub) {
			log.Fatalf("verify run %d: signature rejected", i)
		}
		for _, p := range sig.Z {
			for _, c := range p.Coeffs {
				zCoeffs = append(zCoeffs, centered(c))
			}
		}
		for pos, c := range sig.C.Coeffs {
			switch c {
			case 1:
				plusCount++
				challengePos = append(challengePos, float64(pos))
			case ringq.Q - 1:
				minusCount++
				challengePos = append(challengePos, float64(pos))
			}
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	stamp := time.Now().Format("20060102_150405")

	summary := struct {
		Level       int              `json:"level"`
		Runs        int              `json:"runs"`
		ZStats      summaryStats     `json:"z_stats"`
		PlusSigns   int              `json:"challenge_plus"`
		MinusSigns  int              `json:"challenge_minus"`
		Measures    map[string]int64 `json:"measures"`
		ProfEntries []prof.Entry     `json:"prof_entries"`
	}{
		Level: *level, Runs: *runs,
		ZStats:      computeStats(zCoeffs),
		PlusSigns:   plusCount,
		MinusSigns:  minusCount,
		Measures:    measureutil.SnapshotAndReset(),
		ProfEntries: prof.SnapshotAndReset(),
	}
	if err := saveJSON(filepath.Join(*outDir, "summary_"+stamp+".json"), summary); err != nil {
		log.Fatalf("save summary: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newHistogramChart("response coefficients (centered)", zCoeffs, 101),
		newHistogramChart("challenge positions", challengePos, 64),
	)
	f, err := os.Create(filepath.Join(*outDir, "distributions_"+stamp+".html"))
	if err != nil {
		log.Fatalf("create report: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render report: %v", err)
	}
	log.Printf("report written to %s", *outDir)
}
