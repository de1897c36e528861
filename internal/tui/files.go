package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
)

// sidebarItem is either an overlay group or a loadable file.
type sidebarItem struct {
	title, desc string
	group       string
	path        string
}

func (s sidebarItem) Title() string       { return s.title }
func (s sidebarItem) Description() string { return s.desc }
func (s sidebarItem) FilterValue() string { return s.title }

var overlayExts = map[string]bool{
	".geojson": true,
	".json":    true,
	".wkt":     true,
	".csv":     true,
	".kml":     true,
}

// refreshGroups lists the registry's groups with their visibility.
func (m *Model) refreshGroups() {
	m.sidebar = sidebarGroups
	m.l.Title = "Groups"
	var items []list.Item
	for _, name := range m.reg.Names() {
		g, _ := m.reg.Group(name)
		state := "hidden"
		if m.reg.Enabled(name) {
			state = "shown"
		}
		items = append(items, sidebarItem{
			title: name,
			desc:  fmt.Sprintf("%s  %d markers  %d shapes", state, len(g.Markers), len(g.Polygons)),
			group: name,
		})
	}
	m.l.SetItems(items)
}

// refreshDir lists overlay files in the working directory.
func (m *Model) refreshDir() {
	m.sidebar = sidebarFiles
	m.l.Title = "Files"
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if overlayExts[ext] {
			items = append(items, sidebarItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(sidebarItem).title < items[j].(sidebarItem).title })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no overlay files in current directory"
	}
}

// selectSidebarItem toggles the selected group or loads the selected file.
func (m *Model) selectSidebarItem() {
	it, ok := m.l.SelectedItem().(sidebarItem)
	if !ok {
		return
	}
	if it.path != "" {
		m.loadPath(it.path)
		return
	}
	if m.reg.Toggle(it.group) {
		m.status = "shown: " + it.group
	} else {
		m.status = "hidden: " + it.group
	}
	idx := m.l.Index()
	m.refreshGroups()
	m.l.Select(idx)
}

// loadPath adds an overlay file to the registry and shows its groups.
func (m *Model) loadPath(p string) {
	before := make(map[string]bool)
	for _, n := range m.reg.Names() {
		before[n] = true
	}
	if err := m.reg.LoadFile(p); err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn().Err(err).Str("path", p).Msg("failed to load overlays")
		return
	}
	for _, n := range m.reg.Names() {
		if !before[n] || m.reg.Enabled(n) {
			m.reg.Enable(n)
		}
	}
	m.status = "loaded: " + filepath.Base(p)
	m.refreshGroups()
}
