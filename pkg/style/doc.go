// Package style renders and injects the stylesheet that carries the zoom
// scale factor.
//
// The factor is exposed as one custom property, --os-zoom-factor. Every
// derived size (font size, spacing, heading sizes) is a calc() formula over
// that property, so a page may override the formulas without touching the
// number:
//
//	:root {
//	  --os-zoom-factor: 0.8;
//	  --os-zoom-font-size: calc(var(--os-zoom-base-font-size) * var(--os-zoom-factor));
//	}
//
// An Injector writes to a Document: MemoryDocument for in-process use and
// tests, or a live browser page (see package browser). Inject and Remove are
// idempotent; the stylesheet is found through the stable element id
// "os-zoom-styles".
package style
