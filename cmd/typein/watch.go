package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/retroforge/typein/pkgs/convert"
	"github.com/retroforge/typein/pkgs/errors"
)

// watchAndConvert re-runs the conversion every time the listing file
// changes, so a typist entering a program incrementally sees fresh checksums
// on every save. Output files are replaced without prompting; conversion
// errors are reported and watching continues.
func watchAndConvert(path string, opts convert.Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrInputRead, "starting file watcher", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: most editors replace the file on
	// save, which would drop a watch on the file itself.
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInputRead, "resolving input path", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrap(errors.ErrInputRead, "watching input directory", err)
	}

	reportPass(path, opts)
	fmt.Printf("Watching %q for changes (Ctrl-C to stop)...\n", path)

	// Saves often arrive as bursts of events; collapse each burst into one
	// conversion pass.
	var pending *time.Timer
	debounced := make(chan struct{}, 1)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case debounced <- struct{}{}:
				default:
				}
			})

		case <-debounced:
			reportPass(path, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(errors.ErrInputRead, "watching input file", err)
		}
	}
}

// reportPass runs one conversion and reports failures without stopping the
// watch loop.
func reportPass(path string, opts convert.Options) {
	if err := convertFile(path, opts, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
