// =============================================================================
// MAVLink Dialect Converter - Sync Orchestrator
// =============================================================================
//
// The scheduled job that keeps the JSON mirror in step with the upstream XML
// dialect definitions. Pure glue around the converter:
//
//   1. Clone or fast-forward the upstream dialect repository
//   2. Discover XML files matching the configured glob
//   3. Convert each file, one goroutine per file (bounded by max_concurrency)
//   4. Optionally commit the refreshed mirrors
//
// Each conversion is fully independent with no shared state, so the fan-out
// needs no synchronization beyond collecting results.
//
// GIT:
//   Repository operations shell out to the git binary, which the automation
//   hosts already carry for the upstream checkout. Failures surface the
//   captured git output.
//
// =============================================================================

package syncer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mavforge/dialect2json/internal/config"
	"github.com/mavforge/dialect2json/internal/converter"
	"github.com/mavforge/dialect2json/pkg/utils"
)

// =============================================================================
// SUMMARY STRUCTURE
// =============================================================================

// Summary reports the outcome of one sync run.
type Summary struct {
	// RunID identifies the run in logs.
	RunID string

	// Total is the number of dialect files discovered.
	Total int

	// Succeeded and Failed count per-file outcomes.
	Succeeded int
	Failed    int

	// Committed indicates whether a mirror commit was created.
	Committed bool

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Results holds the per-file results in input order.
	Results []converter.Result
}

// =============================================================================
// SYNCER STRUCTURE
// =============================================================================

// Syncer runs the repository-sync job.
type Syncer struct {
	cfg   *config.Config
	log   zerolog.Logger
	runID string
}

// New creates a Syncer for one run.
func New(cfg *config.Config, log zerolog.Logger) *Syncer {
	runID := uuid.New().String()
	return &Syncer{
		cfg:   cfg,
		log:   log.With().Str("run_id", runID).Logger(),
		runID: runID,
	}
}

// =============================================================================
// MAIN SYNC FUNCTION
// =============================================================================

// Run executes one full sync: checkout, discover, convert, commit.
//
// When continue_on_error is set (the default), individual file failures are
// reported in the Summary but do not fail the run, and successful mirrors
// are still committed. Otherwise any failure fails the run and nothing is
// committed.
func (s *Syncer) Run() (*Summary, error) {
	start := time.Now()
	summary := &Summary{RunID: s.runID}

	if err := s.ensureCheckout(); err != nil {
		return summary, err
	}

	files, err := utils.DiscoverFiles(s.cfg.Sync.CheckoutDir, s.cfg.Sync.Pattern)
	if err != nil {
		return summary, err
	}
	summary.Total = len(files)
	s.log.Info().Int("files", len(files)).Str("pattern", s.cfg.Sync.Pattern).Msg("discovered dialect files")

	if len(files) == 0 {
		summary.Elapsed = time.Since(start)
		return summary, nil
	}

	summary.Results = s.convertAll(files)
	for _, r := range summary.Results {
		if r.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
			s.log.Error().Err(r.Error).Str("input", r.InputPath).Msg("conversion failed")
		}
	}

	if summary.Failed > 0 && !*s.cfg.ContinueOnError {
		summary.Elapsed = time.Since(start)
		return summary, fmt.Errorf("%d of %d dialect files failed to convert", summary.Failed, summary.Total)
	}

	if s.cfg.Sync.Commit && summary.Succeeded > 0 {
		committed, err := s.commitMirrors(summary.Succeeded)
		if err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}
		summary.Committed = committed
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

// =============================================================================
// CONVERSION FAN-OUT
// =============================================================================

// convertAll converts the files concurrently and returns per-file results
// in input order. Concurrency is bounded by max_concurrency.
func (s *Syncer) convertAll(files []string) []converter.Result {
	results := make([]converter.Result, len(files))
	sem := make(chan struct{}, s.cfg.MaxConcurrency)

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			out := s.outputPathFor(file)
			if s.cfg.ArchiveDir != "" {
				if _, err := utils.ArchivePrevious(out, s.cfg.ArchiveDir); err != nil {
					s.log.Warn().Err(err).Str("output", out).Msg("failed to archive previous mirror")
				}
			}

			conv := converter.New(file, out, converter.Options{Pretty: s.cfg.Pretty}, s.log)
			results[i] = conv.Run()
		}(i, file)
	}
	wg.Wait()

	return results
}

// outputPathFor maps an input dialect path to its JSON mirror path.
// common.xml becomes <output_dir>/common.json.
func (s *Syncer) outputPathFor(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(s.cfg.OutputDir, base+".json")
}

// =============================================================================
// GIT OPERATIONS
// =============================================================================

// ensureCheckout clones the upstream repository, or fast-forwards an
// existing checkout to the configured branch.
func (s *Syncer) ensureCheckout() error {
	sc := s.cfg.Sync

	if _, err := os.Stat(filepath.Join(sc.CheckoutDir, ".git")); err == nil {
		s.log.Info().Str("dir", sc.CheckoutDir).Msg("updating upstream checkout")
		if out, err := runGit(sc.CheckoutDir, "fetch", "origin", sc.Branch); err != nil {
			return fmt.Errorf("git fetch failed: %w\n%s", err, out)
		}
		if out, err := runGit(sc.CheckoutDir, "reset", "--hard", "origin/"+sc.Branch); err != nil {
			return fmt.Errorf("git reset failed: %w\n%s", err, out)
		}
		return nil
	}

	s.log.Info().Str("repo", sc.RepoURL).Str("branch", sc.Branch).Msg("cloning upstream repository")
	if out, err := runGit("", "clone", "--depth", "1", "--branch", sc.Branch, sc.RepoURL, sc.CheckoutDir); err != nil {
		return fmt.Errorf("git clone failed: %w\n%s", err, out)
	}
	return nil
}

// commitMirrors stages and commits the output directory. Returns false when
// the working tree was already clean, which is the common case on a
// no-change sync.
func (s *Syncer) commitMirrors(count int) (bool, error) {
	dir := s.cfg.OutputDir

	if out, err := runGit(dir, "add", "-A", "."); err != nil {
		return false, fmt.Errorf("git add failed: %w\n%s", err, out)
	}

	status, err := runGit(dir, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status failed: %w\n%s", err, status)
	}
	if strings.TrimSpace(status) == "" {
		s.log.Info().Msg("mirrors unchanged, nothing to commit")
		return false, nil
	}

	msg := renderCommitMessage(s.cfg.Sync.CommitMessage, count, time.Now())
	if out, err := runGit(dir, "commit", "-m", msg); err != nil {
		return false, fmt.Errorf("git commit failed: %w\n%s", err, out)
	}

	s.log.Info().Str("message", msg).Msg("committed refreshed mirrors")
	return true, nil
}

// renderCommitMessage fills the {count} and {timestamp} placeholders of the
// configured commit message template.
func renderCommitMessage(template string, count int, now time.Time) string {
	msg := strings.ReplaceAll(template, "{count}", strconv.Itoa(count))
	return strings.ReplaceAll(msg, "{timestamp}", now.Format("2006-01-02 15:04:05"))
}

// runGit runs a git command, optionally inside dir, returning its combined
// output.
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}
