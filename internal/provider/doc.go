// Package provider wires an HTTP application to the BayLang render pipeline.
// A Provider owns the runtime Context and its hook registry, creates a
// RenderContainer per request, records the matched route and appends the
// runtime script tags to the layout footer. Host applications add their own
// behavior by passing observers instead of relying on global event buses.
package provider
