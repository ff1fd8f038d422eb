package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/anima-ffp/engine/assets/loaders"
	"github.com/spaghettifunk/anima-ffp/engine/core"
	"github.com/spaghettifunk/anima-ffp/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the texture directory by name: the path relative to
// the directory, slash separated, without extension. With watching enabled
// it keeps the index current and reports changed assets on Changes().
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	changes  chan string
}

func NewAssetManager(root string, watch bool) (*AssetManager, error) {
	am := &AssetManager{
		root:    root,
		assets:  make(map[string]AssetInfo),
		loaders: make(map[metadata.ResourceType]Loader),
	}
	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})

	if watch {
		fsWatch, err := fsnotify.NewWatcher()
		if err != nil {
			core.LogError(err.Error())
			return nil, err
		}
		am.fsnotify = fsWatch
		am.changes = make(chan string, 16)
		am.done = make(chan struct{})
		am.stopped = make(chan struct{})
	}

	if err := am.watchRecursive(root); err != nil {
		if am.fsnotify != nil {
			am.fsnotify.Close()
		}
		err = fmt.Errorf("failed to index assets in %s: %w", root, err)
		core.LogError(err.Error())
		return nil, err
	}
	if watch {
		go am.start()
	}
	core.LogInfo("indexed %d assets in %s", am.Len(), root)
	return am, nil
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// Changes reports the names of assets created or modified on disk. It is
// nil when the manager does not watch, so receiving from it blocks forever.
func (am *AssetManager) Changes() <-chan string {
	return am.changes
}

func (am *AssetManager) Len() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

func (am *AssetManager) Names() []string {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	names := make([]string, 0, len(am.assets))
	for name := range am.assets {
		names = append(names, name)
	}
	return names
}

// LoadImage decodes the named image with the registered image loader.
func (am *AssetManager) LoadImage(name string, params *metadata.ImageParams) (*metadata.Image, error) {
	res, err := am.LoadAsset(name, params)
	if err != nil {
		return nil, err
	}
	img, ok := res.Data.(*metadata.Image)
	if !ok {
		err := fmt.Errorf("asset %s is not an image: %w", name, core.ErrNotFound)
		core.LogError(err.Error())
		return nil, err
	}
	return img, nil
}

// Load an asset using the appropriate loader
func (am *AssetManager) LoadAsset(name string, params interface{}) (*metadata.Resource, error) {
	am.mutex.Lock()
	asset, exists := am.assets[name]
	if exists {
		asset.LastLoaded = time.Now()
		am.assets[name] = asset
	}
	am.mutex.Unlock()
	if !exists {
		err := fmt.Errorf("asset %s: %w", name, core.ErrNotFound)
		core.LogError(err.Error())
		return nil, err
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		err := fmt.Errorf("no loader registered for asset type %d: %w", asset.Type, core.ErrNotFound)
		core.LogError(err.Error())
		return nil, err
	}
	return loader.Load(asset.Path, params)
}

func (am *AssetManager) UnloadAsset(asset *metadata.Resource) error {
	loader, ok := am.loaders[determineAssetType(asset.FullPath)]
	if !ok {
		return nil
	}
	return loader.Unload(asset)
}

// Close stops watching. The Changes channel is closed once the watch loop
// has exited.
func (am *AssetManager) Close() error {
	if am.fsnotify == nil || am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	<-am.stopped
	return am.fsnotify.Close()
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	defer close(am.changes)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			am.handleEvent(e)

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err.Error())

		case <-am.done:
			return
		}
	}
}

func (am *AssetManager) handleEvent(e fsnotify.Event) {
	if e.Has(fsnotify.Create) {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			if err := am.watchRecursive(e.Name); err != nil {
				core.LogWarn("failed to watch %s: %s", e.Name, err.Error())
			}
			return
		}
	}
	if e.Has(fsnotify.Create) || e.Has(fsnotify.Write) {
		if name, ok := am.indexFile(e.Name); ok {
			select {
			case am.changes <- name:
			case <-am.done:
			}
		}
	}
	// a removed path may have been a directory, so always try to unwatch it
	if e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename) {
		am.removeAsset(e.Name)
		if err := am.fsnotify.Remove(e.Name); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			core.LogDebug("unwatch %s: %s", e.Name, err.Error())
		}
	}
}

// watchRecursive indexes every file under path and, when watching, adds
// every directory to the watch list.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if am.fsnotify != nil {
				return am.fsnotify.Add(walkPath)
			}
			return nil
		}
		am.indexFile(walkPath)
		return nil
	})
}

func (am *AssetManager) assetName(path string) (string, bool) {
	rel, err := filepath.Rel(am.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel)), true
}

// indexFile records a file the loaders understand and returns its name.
func (am *AssetManager) indexFile(path string) (string, bool) {
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return "", false
	}
	name, ok := am.assetName(path)
	if !ok {
		return "", false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	if known, exists := am.assets[name]; exists && known.Path != path {
		core.LogWarn("asset %s: %s shadows %s", name, path, known.Path)
	}
	am.assets[name] = AssetInfo{
		Path: path,
		Type: assetType,
	}
	return name, true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	name, ok := am.assetName(path)
	if !ok {
		return
	}
	am.mutex.Lock()
	defer am.mutex.Unlock()
	if known, exists := am.assets[name]; exists && known.Path == path {
		delete(am.assets, name)
	}
}

func determineAssetType(path string) metadata.ResourceType {
	if loaders.IsImage(path) {
		return metadata.ResourceTypeImage
	}
	return metadata.ResourceTypeNone
}
