// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// reloads the configuration file when it changes and hands the new
// configuration to apply
//
// the directory is watched rather than the file so that editors which
// replace the file by renaming are also seen
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	apply    func(*Configuration)
}

func newConfigWatcher(targetFile string, log *logger.L, apply func(*Configuration)) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	directory, _ := filepath.Split(filePath)
	if err := watcher.Add(directory); nil != err {
		watcher.Close()
		return nil, fmt.Errorf("watch: %q  error: %w", directory, err)
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		apply:    apply,
	}, nil
}

// Run - background process loop
func (w *configWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			w.log.Debugf("file event: %v", event)
			if watcherEventFileChange(event) {
				w.reload()
			} else if watcherEventFileRemove(event) {
				w.log.Warnf("file: %q removed, keeping current settings", w.filePath)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("stopped")
}

func (w *configWatcher) reload() {
	configuration, err := getConfiguration(w.filePath)
	if nil != err {
		w.log.Errorf("failed to read configuration from: %q  error: %s", w.filePath, err)
		return
	}
	w.log.Infof("configuration reloaded from: %q", w.filePath)
	w.apply(configuration)
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
