package style

import (
	"maps"
	"sync"
)

// Document is the page the stylesheet is injected into.
type Document interface {
	HasElement(id string) (bool, error)
	AppendStyle(id, css string) error
	RemoveElement(id string) error
	SetRootProperty(name, value string) error
}

// MemoryDocument is an in-process Document. It keeps <style> elements by id
// and the inline custom properties of the root element.
type MemoryDocument struct {
	mu         sync.RWMutex
	styles     map[string]string
	order      []string
	properties map[string]string
}

// NewMemoryDocument returns an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{
		styles:     make(map[string]string),
		properties: make(map[string]string),
	}
}

func (d *MemoryDocument) HasElement(id string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.styles[id]
	return ok, nil
}

// AppendStyle adds a <style> element. An existing element with the same id
// is left in place, ids are unique within a document.
func (d *MemoryDocument) AppendStyle(id, css string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.styles[id]; ok {
		return nil
	}
	d.styles[id] = css
	d.order = append(d.order, id)
	return nil
}

func (d *MemoryDocument) RemoveElement(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.styles[id]; !ok {
		return nil
	}
	delete(d.styles, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

func (d *MemoryDocument) SetRootProperty(name, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.properties[name] = value
	return nil
}

// Styles returns the ids of injected style elements in insertion order.
func (d *MemoryDocument) Styles() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.order...)
}

// Style returns the CSS of the element with id.
func (d *MemoryDocument) Style(id string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	css, ok := d.styles[id]
	return css, ok
}

// RootProperty returns an inline custom property of the root element.
func (d *MemoryDocument) RootProperty(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.properties[name]
	return v, ok
}

// RootProperties returns a copy of all root properties.
func (d *MemoryDocument) RootProperties() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.properties)
}
