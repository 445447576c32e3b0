package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/analytics"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/export"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/loader"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
	"github.com/naufalhajid/Dashboard-Ferizyan/internal/pipeline"
)

type options struct {
	input       string
	output      string
	reference   string
	activeOnly  bool
	columns     []string
	aliasesFile string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var opts options
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "cleaner",
		Short: "Bersihkan data karyawan dan tulis CSV kanonik",
		Long: `cleaner menjalankan pipeline data karyawan tanpa server:
ganti nama kolom, buang kolom kosong, klasifikasi status dan gender,
parse tanggal, lalu menulis hasilnya sebagai CSV.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if opts.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(opts, cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "File data karyawan (CSV, XLS, XLSX)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "File CSV hasil (default: stdout)")
	cmd.Flags().StringVar(&opts.reference, "reference-date", "", "Tanggal acuan YYYY-MM-DD (default: hari ini)")
	cmd.Flags().BoolVar(&opts.activeOnly, "active-only", false, "Hanya tulis karyawan aktif per tanggal acuan")
	cmd.Flags().StringSliceVar(&opts.columns, "columns", nil, "Kolom yang ditulis, sesuai urutan (default: semua)")
	cmd.Flags().StringVar(&opts.aliasesFile, "aliases", "", "File YAML alias kolom tambahan")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runClean(opts options, stdout io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Tanggal acuan
	ref := time.Now().UTC().Truncate(24 * time.Hour)
	if opts.reference != "" {
		t, err := time.Parse(model.DateLayout, opts.reference)
		if err != nil {
			return fmt.Errorf("reference-date harus YYYY-MM-DD: %w", err)
		}
		ref = t
	}

	// 2. Baca input
	aliases, err := pipeline.LoadAliasFile(opts.aliasesFile)
	if err != nil {
		return err
	}
	f, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("gagal membuka %s: %w", opts.input, err)
	}
	defer f.Close()

	raw, err := loader.Load(filepath.Base(opts.input), f)
	if err != nil {
		return err
	}

	// 3. Pipeline
	res := pipeline.New(aliases...).Run(raw, ref)
	out := res.Canonical
	if opts.activeOnly {
		out = analytics.ActiveOnly(out, ref)
	}
	if len(opts.columns) > 0 {
		out = out.Select(opts.columns...)
		if len(out.Columns) == 0 {
			return fmt.Errorf("tidak ada kolom yang cocok dengan --columns %v", opts.columns)
		}
	}
	logger.Info("data dibersihkan",
		zap.String("input", opts.input),
		zap.Int("rows_in", raw.Len()),
		zap.Int("rows_out", out.Len()),
		zap.Strings("dropped_columns", res.Dropped),
	)

	// 4. Tulis hasil
	if opts.output == "" {
		return export.WriteCSV(stdout, out)
	}
	w, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("gagal membuat %s: %w", opts.output, err)
	}
	if err := export.WriteCSV(w, out); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
