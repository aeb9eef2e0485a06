package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"midl/internal/ast"
	"midl/internal/diag"
	"midl/internal/lexer"
	"midl/internal/parser"
	"midl/internal/semantic"
	"midl/internal/source"
	"midl/internal/token"
)

// Options configures a driver run.
type Options struct {
	// MaxDiagnostics caps how many diagnostics a single file accumulates;
	// non-positive values keep only the first.
	MaxDiagnostics int
	// Jobs bounds check parallelism; <=0 uses GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, lets byte-identical files skip the pipeline.
	Cache *DiskCache
}

// Result is the outcome of checking one file. Spec and AST are nil when
// the corresponding phase failed or was skipped on a cache hit.
type Result struct {
	Path      string
	FileID    source.FileID
	Spec      *parser.Specification
	AST       *ast.TreeNode
	Bag       *diag.Bag
	FromCache bool
}

// Ok reports whether the file checked clean.
func (r *Result) Ok() bool {
	return !r.Bag.HasErrors()
}

// Tokenize lexes one file to completion, the EOF token included.
func Tokenize(file *source.File, maxDiagnostics int) ([]token.Token, *diag.Bag) {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, bag
}

// CheckFile runs the full pipeline on one already-loaded file: parse, then
// the interleaved AST build with name checking. Syntax diagnostics land in
// the bag via the parser's reporter; the fatal semantic error, if any, is
// converted into a diagnostic with the matching code.
func CheckFile(fileSet *source.FileSet, id source.FileID, opts Options) Result {
	file := fileSet.Get(id)
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := Result{Path: file.Path, FileID: id, Bag: bag}

	spec, err := parser.ParseFile(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if err != nil {
		// Already in the bag; the parser reports before returning.
		return res
	}
	res.Spec = spec

	tree, err := ast.NewBuilder(file).Build(spec)
	if err != nil {
		// The message carries its own line number, matching the error text
		// of the builder; no span is attached.
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     semanticCode(err),
			Message:  err.Error(),
			Primary:  source.Span{},
		})
		return res
	}
	res.AST = tree
	return res
}

func semanticCode(err error) diag.Code {
	var dup *semantic.DuplicateDefinitionError
	if errors.As(err, &dup) {
		return diag.SemaDuplicateDefinition
	}
	var undef *semantic.UndefinedError
	if errors.As(err, &undef) {
		return diag.SemaUndefinedName
	}
	return diag.SemaUndefinedName
}

// ExpandPaths resolves the argument list into a sorted list of .idl files.
// Directory arguments are walked recursively; file arguments are taken
// as-is.
func ExpandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".idl") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// CheckPaths checks every named file, in parallel up to opts.Jobs. Files
// are loaded serially up front; per-file work is independent, each unit
// getting its own parser, builder, and symbol table. The results slice is
// parallel to the expanded, sorted file list.
func CheckPaths(ctx context.Context, paths []string, opts Options) (*source.FileSet, []Result, error) {
	files, err := ExpandPaths(paths)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSet(), nil, nil
	}

	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = Result{Path: path, Bag: bag}
				return nil
			}

			id := fileIDs[path]
			results[i] = checkCached(fileSet, id, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// checkCached wraps CheckFile with the content-hash cache. Hits replay the
// recorded diagnostics without reparsing; misses run the pipeline and
// record the outcome.
func checkCached(fileSet *source.FileSet, id source.FileID, opts Options) Result {
	file := fileSet.Get(id)

	if opts.Cache != nil {
		var cached CachedResult
		// A failed read is treated as a miss: the cache is advisory.
		if hit, err := opts.Cache.Get(file.Hash, &cached); err == nil && hit {
			bag := diag.NewBag(opts.MaxDiagnostics)
			for _, d := range cached.Diags {
				span := source.Span{}
				if d.Start != 0 || d.End != 0 {
					span = source.Span{File: id, Start: d.Start, End: d.End}
				}
				bag.Add(diag.Diagnostic{
					Severity: diag.Severity(d.Severity),
					Code:     diag.Code(d.Code),
					Message:  d.Message,
					Primary:  span,
				})
			}
			return Result{Path: file.Path, FileID: id, Bag: bag, FromCache: true}
		}
	}

	res := CheckFile(fileSet, id, opts)

	if opts.Cache != nil {
		payload := &CachedResult{
			Schema: cacheSchemaVersion,
			Ok:     res.Ok(),
		}
		for _, d := range res.Bag.Items() {
			payload.Diags = append(payload.Diags, CachedDiagnostic{
				Severity: uint8(d.Severity),
				Code:     uint16(d.Code),
				Message:  d.Message,
				Start:    d.Primary.Start,
				End:      d.Primary.End,
			})
		}
		// Write failures do not fail the check.
		_ = opts.Cache.Put(file.Hash, payload)
	}
	return res
}
