// Package plugins resolves rule, formatter and reporter
// implementations by logical name across an ordered list of plugin
// sources. Sources are explicit registries built at process start;
// there is no dynamic loading. Resolution is tolerant of naming
// convention variance: "no-unused-var", "no_unused_var" and
// "noUnusedVar" all map to the same canonical identifier.
package plugins
