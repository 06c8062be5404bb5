package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/decker502/thermodial/internal/logger"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// builtinBoldKey 内置粗体字体的缓存键
const builtinBoldKey = "builtin:gobold"

// ResourceManager 管理字体资源
//
// 字体源按路径缓存，字号不同的 face 共享同一字体源。
type ResourceManager struct {
	sourceCache map[string]*text.GoTextFaceSource
	faceCache   map[string]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		sourceCache: make(map[string]*text.GoTextFaceSource),
		faceCache:   make(map[string]*text.GoTextFace),
	}
}

// LoadFont 加载字体并创建指定字号的 face
//
// path 为空时使用内置的 Go Bold 字体。
//
// 返回：
//   - *text.GoTextFace: 可直接用于 text.Draw 的字体
//   - error: 读取或解析字体失败
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	key := path
	if key == "" {
		key = builtinBoldKey
	}

	cacheKey := fmt.Sprintf("%s:%.1f", key, size)
	if face, ok := rm.faceCache[cacheKey]; ok {
		return face, nil
	}

	source, err := rm.loadSource(path, key)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.faceCache[cacheKey] = face
	return face, nil
}

// loadSource 读取并缓存字体源
func (rm *ResourceManager) loadSource(path, key string) (*text.GoTextFaceSource, error) {
	if source, ok := rm.sourceCache[key]; ok {
		return source, nil
	}

	var data []byte
	if path == "" {
		data = gobold.TTF
	} else {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		data = fileData
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", key, err)
	}

	rm.sourceCache[key] = source
	logger.Sugar.Debugf("[ResourceManager] loaded font %s", key)
	return source, nil
}
