package render

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"fce/archive"
	"fce/config"
	"fce/content"
	"fce/state"
)

// job carries everything needed to render a single payload.
type job struct {
	dst    string // empty means standard output
	format config.OutputFmt
	parser *content.Parser
	res    *Resolver
	out    io.Writer
	log    *zap.Logger
	seq    int
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) != 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Rendering.Format
	if to := cmd.String("to"); to != "" {
		if format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Cfg.Rendering.Format), zap.Error(err))
			format = env.Cfg.Rendering.Format
		}
	}
	env.Overwrite = cmd.Bool("overwrite")

	if err := env.PrepareRendering(); err != nil {
		return err
	}

	j := &job{
		dst:    dst,
		format: format,
		parser: content.NewParser(env.Actions, log),
		res:    NewResolver(env.Styles, log),
		out:    cmd.Root().Writer,
		log:    log,
	}
	if j.out == nil {
		j.out = os.Stdout
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		j.res.LogStats()
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return j.process(ctx, src)
}

// process determines the input type (directory, archive or single payload
// file) and handles it accordingly. Path may point inside of an archive.
func (j *job) process(ctx context.Context, src string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := j.processDir(ctx, head); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			return nil
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := j.processArchive(ctx, head, tail, ""); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		payload, err := isPayloadFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if payload && len(tail) == 0 {
			data, err := os.ReadFile(head)
			if err != nil {
				return err
			}
			return j.processPayload(ctx, data, filepath.Base(head))
		}
		return fmt.Errorf("input was not recognized as notification payload (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir renders every payload and archive under dir in natural order.
// Failures of individual files are logged and reported together.
func (j *job) processDir(ctx context.Context, dir string) (err error) {
	var files []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			j.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(files))

	count := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, cerr := isArchiveFile(path)
		if cerr != nil {
			j.log.Warn("Skipping file", zap.String("file", path), zap.Error(cerr))
			continue
		}
		if isArchive {
			count++
			if perr := j.processArchive(ctx, path, "", filepath.Dir(rel)); perr != nil {
				j.log.Error("Unable to process archive", zap.String("file", path), zap.Error(perr))
				err = multierr.Append(err, perr)
			}
			continue
		}

		payload, cerr := isPayloadFile(path)
		if cerr != nil {
			j.log.Warn("Skipping file", zap.String("file", path), zap.Error(cerr))
			continue
		}
		if !payload {
			j.log.Debug("Skipping file, not recognized as payload or archive", zap.String("file", path))
			continue
		}

		count++
		data, rerr := os.ReadFile(path)
		if rerr == nil {
			rerr = j.processPayload(ctx, data, rel)
		}
		if rerr != nil {
			j.log.Error("Unable to process file", zap.String("file", path), zap.Error(rerr))
			err = multierr.Append(err, rerr)
		}
	}
	if count == 0 {
		j.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

// processArchive renders payloads found inside archive under "pathIn".
// "pathOut" is archive location relative to processed directory.
func (j *job) processArchive(ctx context.Context, path, pathIn, pathOut string) (err error) {
	count := 0
	walkErr := archive.Walk(path, pathIn, func(name string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		payload, cerr := isPayloadInArchive(f)
		if cerr != nil {
			j.log.Warn("Skipping file in archive", zap.String("archive", name), zap.String("path", f.Name), zap.Error(cerr))
			return nil
		}
		if !payload {
			j.log.Debug("Skipping file, not recognized as payload", zap.String("archive", name), zap.String("file", f.Name))
			return nil
		}

		count++
		data, rerr := readZipFile(f)
		if rerr == nil {
			rerr = j.processPayload(ctx, data, filepath.Join(pathOut, filepath.FromSlash(f.Name)))
		}
		if rerr != nil {
			j.log.Error("Unable to process file in archive", zap.String("archive", name), zap.String("file", f.Name), zap.Error(rerr))
			err = multierr.Append(err, rerr)
		}
		return nil
	})
	if walkErr != nil {
		return multierr.Append(walkErr, err)
	}
	if count == 0 {
		j.log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

func readZipFile(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// processPayload renders single payload. "src" is source path relative to
// processed directory or archive, or base name for a single file.
func (j *job) processPayload(ctx context.Context, data []byte, src string) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	j.log.Info("Rendering starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			j.log.Error("Rendering ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", r)
		} else if rerr == nil {
			j.log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	// report names must be unique, same relative name could come from
	// directory and from archive
	j.seq++
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("source-%03d-%s", j.seq, filepath.Base(src)), data)
	}

	entries, err := j.parser.Entries(data)
	if err != nil {
		return fmt.Errorf("unable to parse payload (%s): %w", src, err)
	}

	buf := new(bytes.Buffer)
	if err := Write(buf, j.format, entries, j.res); err != nil {
		return fmt.Errorf("unable to render payload (%s): %w", src, err)
	}

	if j.dst == "" {
		outputName = "stdout"
		_, err := buf.WriteTo(j.out)
		return err
	}

	outputName = buildOutputPath(entries, src, j.dst, j.format, &env.Cfg.Rendering, j.log)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		j.log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%03d-%s", j.seq, filepath.Base(outputName)), outputName)
	}
	return nil
}
