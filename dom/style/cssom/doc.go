/*
Package cssom provides an object model for CSS stylesheets, as far as
CSS-driven placement of elements is concerned.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
We do not need a full CSSOM: placement rules are ordinary declarations,
using custom properties (see package style), and they may be nested within
@media blocks. Everything else is ignored.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
(see package douceuradapter).

Further to consider:

   https://godoc.org/github.com/ericchiang/css
   https://www.w3.org/TR/cssom-1/#the-cssmediarule-interface

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'domino.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domino.cssom")
}
