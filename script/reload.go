package script

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/winshell/shell"
)

// Reloader watches a host's script file and reloads it on change.
type Reloader struct {
	host    *Host
	watcher *fsnotify.Watcher
	log     *shell.Logger
	post    func(func())
	done    chan struct{}
}

// WatchScript starts watching the host's script file. The post
// function moves the reload onto the run loop goroutine; pass the
// window's IdleHandle().AddIdleCallback there. A nil post reloads on
// the watcher goroutine, which is only safe in tests.
func WatchScript(host *Host, post func(func()), log *shell.Logger) (*Reloader, error) {
	if log == nil {
		log = shell.NullLogger
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory. Editors often replace the file, which
	// drops a watch placed on the file itself.
	dir := filepath.Dir(host.Path())
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	r := &Reloader{
		host:    host,
		watcher: w,
		log:     log.WithField("script", host.Path()),
		post:    post,
		done:    make(chan struct{}),
	}
	go r.loop()
	return r, nil
}

// Close stops watching.
func (r *Reloader) Close() error {
	err := r.watcher.Close()
	<-r.done
	return err
}

func (r *Reloader) loop() {
	defer close(r.done)
	target := filepath.Base(r.host.Path())
	for {
		select {
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			r.log.Debug("script changed: %s", ev.Op)
			if r.post != nil {
				r.post(func() { r.host.Reload() })
			} else {
				r.host.Reload()
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.log.Error("watch error: %v", err)
		}
	}
}
