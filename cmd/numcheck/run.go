package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/simdjson-numparse/internal/config"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/number"
	"github.com/biggeezerdevelopment/simdjson-numparse/internal/refcheck"
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// runCheck checks lits, prints the report and writes the dump. It returns
// errFailures when any literal failed.
func runCheck(cmd *cobra.Command, cfg config.Config, lits []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	colorOn, err := useColor(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.Logging.Level)

	log.Debug("checking", "literals", len(lits), "workers", cfg.Workers, "accelerator", number.Accelerator().Name())
	start := time.Now()
	report, err := refcheck.Check(cmd.Context(), lits, refcheck.Options{
		Workers:     cfg.Workers,
		MaxULP:      cfg.MaxULP,
		MaxFailures: cfg.MaxFailures,
	})
	if err != nil {
		return err
	}
	log.Info("check finished", "literals", report.Total, "failures", report.Failures(), "elapsed", time.Since(start))

	if cfg.Dump != "" && len(report.Mismatches) > 0 {
		if err := writeDumpFile(cfg, report); err != nil {
			return err
		}
		log.Info("mismatches written", "path", cfg.Dump, "count", len(report.Mismatches))
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = renderJSON(out, report)
	} else {
		err = renderPretty(out, report, cfg.MaxULP, newPalette(colorOn))
	}
	if err != nil {
		return err
	}
	if report.Failures() > 0 {
		return errFailures
	}
	return nil
}

func writeDumpFile(cfg config.Config, report *refcheck.Report) error {
	f, err := os.Create(cfg.Dump)
	if err != nil {
		return err
	}
	err = refcheck.WriteDump(f, &refcheck.Dump{
		Seed:       cfg.Seed,
		MaxULP:     cfg.MaxULP,
		Mismatches: report.Mismatches,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: failed to write dump: %w", cfg.Dump, err)
	}
	return nil
}

func renderJSON(w io.Writer, report *refcheck.Report) error {
	data, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func renderPretty(w io.Writer, r *refcheck.Report, maxULP uint64, p palette) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "literals\t%d\n", r.Total)
	fmt.Fprintf(tw, "exact\t%d\n", r.Exact)
	fmt.Fprintf(tw, "within %d ulp\t%d\n", maxULP, r.WithinULP)
	fmt.Fprintf(tw, "rejected by both\t%d\n", r.Rejected)
	fmt.Fprintf(tw, "over\t%d\n", r.Over)
	fmt.Fprintf(tw, "kind mismatch\t%d\n", r.KindMismatch)
	fmt.Fprintf(tw, "accept mismatch\t%d\n", r.AcceptMismatch)
	fmt.Fprintf(tw, "max ulp\t%d\n", r.MaxULP)
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Failures() == 0 {
		p.ok.Fprintln(w, "PASS")
		return nil
	}
	p.bad.Fprintf(w, "FAIL")
	fmt.Fprintf(w, " (%d failures)\n", r.Failures())
	for _, m := range r.Mismatches {
		p.bold.Fprintf(w, "  #%d ", m.Index)
		fmt.Fprintf(w, "%s  ", m.Literal)
		p.warn.Fprintf(w, "%s", m.Outcome)
		fmt.Fprintf(w, "  got %s  want %s", m.Got, m.Want)
		if m.Outcome == refcheck.Over {
			fmt.Fprintf(w, "  (%d ulp)", m.ULP)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// readLiterals reads one literal per line. Blank lines and lines starting
// with # are skipped.
func readLiterals(r io.Reader) ([]string, error) {
	var lits []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lits = append(lits, line)
	}
	return lits, sc.Err()
}
