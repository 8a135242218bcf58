package main

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/repository"
)

const (
	bloomCapacity = 1_000_000
	bloomFPR      = 0.001
	progressEvery = 10_000
)

// Creator is the discount registry write path.
type Creator interface {
	Create(ctx context.Context, req discount.CreateRequest) (*discount.Discount, error)
}

// row is one parsed line of an import file.
type row struct {
	file string
	line int
	req  discount.CreateRequest
}

// stats counts import outcomes. Parse failures are counted by the readers,
// everything else by the single writer.
type stats struct {
	read      atomic.Int64
	malformed atomic.Int64
	created   int64
	dupBatch  int64
	conflicts int64
	invalid   int64
}

func main() {
	var databaseURL string

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Usage = func() {
		_, _ = os.Stderr.WriteString("usage: discount-import [--database-url URL] FILE.gz...\n" +
			"Each line holds CODE,value,usageLimit.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, flag.Args()); err != nil {
		slog.Error("discount import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("discount import completed successfully")
}

func run(ctx context.Context, databaseURL string, files []string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return errors.Wrapf(err, "check file %s", f)
		}
	}

	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	st, err := importFiles(ctx, discount.NewRegistry(repository.NewDiscountRepository(pool)), files)
	if err != nil {
		return err
	}

	slog.Info("import summary",
		slog.Int64("read", st.read.Load()),
		slog.Int64("created", st.created),
		slog.Int64("duplicates_in_batch", st.dupBatch),
		slog.Int64("conflicts", st.conflicts),
		slog.Int64("invalid", st.invalid),
		slog.Int64("malformed", st.malformed.Load()),
	)
	return nil
}

// importFiles reads files concurrently and creates discounts through reg
// from a single writer. Codes already seen in this batch are skipped: the
// bloom filter may flag a new code as seen at bloomFPR, so every skipped
// row is logged with its position for a follow-up run.
func importFiles(ctx context.Context, reg Creator, files []string) (*stats, error) {
	st := &stats{}
	rows := make(chan row, 1024)

	g, gctx := errgroup.WithContext(ctx)
	readers, rctx := errgroup.WithContext(gctx)
	for _, f := range files {
		readers.Go(func() error {
			return readFile(rctx, f, st, rows)
		})
	}
	g.Go(func() error {
		err := readers.Wait()
		close(rows)
		return err
	})
	g.Go(func() error {
		return write(gctx, reg, st, rows)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return st, nil
}

func write(ctx context.Context, reg Creator, st *stats, rows <-chan row) error {
	seen := bloom.NewWithEstimates(bloomCapacity, bloomFPR)
	var n int64

	for r := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		if n%progressEvery == 0 {
			slog.Info("write progress", slog.Int64("rows", n), slog.Int64("created", st.created))
		}

		code := discount.NormalizeCode(r.req.Code)
		if seen.TestAndAddString(code) {
			st.dupBatch++
			slog.Warn("duplicate code in batch, skipped",
				slog.String("code", code),
				slog.String("file", r.file),
				slog.Int("line", r.line),
			)
			continue
		}

		_, err := reg.Create(ctx, r.req)
		var verr *discount.ValidationError
		switch {
		case err == nil:
			st.created++
		case errors.Is(err, discount.ErrDuplicateCode):
			st.conflicts++
		case errors.As(err, &verr):
			st.invalid++
			slog.Warn("invalid discount, skipped",
				slog.String("file", r.file),
				slog.Int("line", r.line),
				slog.String("error", err.Error()),
			)
		default:
			return errors.Wrapf(err, "create discount %s (%s:%d)", code, r.file, r.line)
		}
	}
	return nil
}

// readFile streams a gzip-compressed file and sends every parsed line.
func readFile(ctx context.Context, path string, st *stats, out chan<- row) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		st.read.Add(1)

		req, err := parseLine(text)
		if err != nil {
			st.malformed.Add(1)
			slog.Warn("malformed line, skipped",
				slog.String("file", path),
				slog.Int("line", line),
				slog.String("error", err.Error()),
			)
			continue
		}

		select {
		case out <- row{file: path, line: line, req: req}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}
	return nil
}

// parseLine parses "CODE,value,usageLimit".
func parseLine(text string) (discount.CreateRequest, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return discount.CreateRequest{}, errors.Errorf("want 3 fields, got %d", len(parts))
	}
	value, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return discount.CreateRequest{}, errors.Wrap(err, "parse value")
	}
	limit, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return discount.CreateRequest{}, errors.Wrap(err, "parse usage limit")
	}
	return discount.CreateRequest{
		Code:       strings.TrimSpace(parts[0]),
		Value:      value,
		UsageLimit: limit,
	}, nil
}
