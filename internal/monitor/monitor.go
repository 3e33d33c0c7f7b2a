// Package monitor drives the glltail poll loop: rescan the capture file,
// convert the newest GLL fix, redraw the status block, append the record,
// sleep, repeat.
package monitor

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"glltail/internal/config"
	"glltail/internal/gll"
	"glltail/internal/ui"
)

// Fix is the display form of the newest converted position.
type Fix struct {
	Lat     string // decimal degrees, or a waiting indicator
	LatHemi string
	Lon     string
	LonHemi string
	Clock   string // fix time from the sentence, shifted; may be NoFixTime
	Valid   string // "A"/"V" when known
	Raw     string // the matched capture line
}

// Monitor owns the loop state that survives between iterations: the waiting
// animation step, and the last fully converted fix with its freshness.
type Monitor struct {
	cfg  config.Config
	rend *ui.Renderer
	log  *zap.Logger

	now func() time.Time

	step    int // waiting animation, cycles 0,1,2
	lastFix *Fix
	fresh   bool // a GLL line was found in the current cycle
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithClock substitutes the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

func New(cfg config.Config, rend *ui.Renderer, logger *zap.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		cfg:  cfg,
		rend: rend,
		log:  logger,
		now:  time.Now,
		step: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run polls until ctx is cancelled. Data-shaped failures (malformed layout,
// conversion errors) retry immediately; everything else waits out the
// configured interval.
func (m *Monitor) Run(ctx context.Context) error {
	interval := m.cfg.Interval()
	m.log.Info("monitor started",
		zap.String("watch", m.cfg.Watch),
		zap.String("record", m.cfg.Record),
		zap.Int("interval_s", m.cfg.IntervalS))

	for {
		sleep := m.Iterate()
		if !sleep {
			// Immediate retry, but stay cancellable.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// Iterate runs one poll cycle and reports whether the loop should sleep
// before the next one.
func (m *Monitor) Iterate() (sleep bool) {
	m.step++
	if m.step > 2 {
		m.step = 0
	}
	clock := m.now().Format("15:04:05")

	sent, err := gll.ScanLast(m.cfg.Watch)
	if err != nil {
		return m.handleScanError(clock, err)
	}
	m.fresh = true

	lat, latHemi, lon, lonHemi, err := sent.Coordinates()
	if err != nil {
		m.log.Warn("malformed sentence", zap.String("line", sent.Line), zap.Error(err))
		m.renderError(clock, err)
		return false
	}

	fix := Fix{
		LatHemi: latHemi,
		LonHemi: lonHemi,
		Clock:   gll.FixClock(sent.TimeField(), m.cfg.UTCOffsetHours),
		Raw:     sent.Line,
	}
	if v, ok := sent.Validity(); ok {
		fix.Valid = v
	}

	complete := lat != "" && lon != ""
	if complete {
		fix.Lat, err = gll.DecimalDegrees(lat, gll.Lat)
		if err == nil {
			fix.Lon, err = gll.DecimalDegrees(lon, gll.Lon)
		}
		if err != nil {
			m.log.Warn("conversion failed", zap.String("line", sent.Line), zap.Error(err))
			m.renderError(clock, err)
			return false
		}
		if rerr := appendRecord(m.cfg.Record, clock, fix); rerr != nil {
			m.log.Warn("record append failed", zap.Error(rerr))
			m.renderError(clock, rerr)
			return false
		}
		m.lastFix = &fix
	} else {
		// Receiver is alive but has no fix yet; show the animation in
		// place of the missing value. No record is written.
		fix.Lat = ui.Waiting("Waiting for data", m.step)
		fix.Lon = fix.Lat
		if lat != "" {
			if fix.Lat, err = gll.DecimalDegrees(lat, gll.Lat); err != nil {
				m.renderError(clock, err)
				return false
			}
		}
		if lon != "" {
			if fix.Lon, err = gll.DecimalDegrees(lon, gll.Lon); err != nil {
				m.renderError(clock, err)
				return false
			}
		}
	}

	m.render(m.statusFrame(clock, fix, false))
	return true
}

// handleScanError renders the frame for a cycle that found no usable line.
func (m *Monitor) handleScanError(clock string, err error) (sleep bool) {
	m.fresh = false
	switch {
	case errors.Is(err, gll.ErrNoSentence):
		if m.lastFix != nil {
			// Nothing new this cycle: keep showing the last known
			// fix, marked stale instead of silently reused.
			m.render(m.statusFrame(clock, *m.lastFix, true))
			return true
		}
		m.render(m.waitingFrame(clock))
		return true
	case errors.Is(err, gll.ErrFileUnavailable):
		m.log.Warn("scan failed", zap.Error(err))
		m.renderError(clock, err)
		return true
	default:
		m.log.Warn("scan failed", zap.Error(err))
		m.renderError(clock, err)
		return false
	}
}

func (m *Monitor) render(lines []string) {
	if err := m.rend.Render(lines); err != nil {
		m.log.Error("render failed", zap.Error(err))
	}
}

func (m *Monitor) renderError(clock string, err error) {
	m.render(m.errorFrame(clock, err))
}

// LastFix returns the most recent fully converted fix and whether the
// current cycle found a GLL line.
func (m *Monitor) LastFix() (fix *Fix, fresh bool) {
	return m.lastFix, m.fresh
}
