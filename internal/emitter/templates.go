package emitter

import "text/template"

// runnerTemplate renders a complete runner source file. Every section ends
// with a newline and sections are separated by one blank line, so an empty
// group list still yields a complete main function.
var runnerTemplate = template.Must(template.New("runner").Parse(`
// Generated Fossil Logic Test Runner ({{.Title}})
#include <{{.Framework.Include}}>

{{.Banner}}
// * Fossil Logic Test List ({{.Title}})
{{.Banner}}
{{range .Groups}}{{$.Framework.Export}}({{.}});
{{end}}
{{.Banner}}
// * Fossil Logic Test Runner ({{.Title}})
{{.Banner}}
int main(int argc, char **argv) {
    {{.Framework.Start}}(argc, argv);
{{range .Groups}}    {{$.Framework.Import}}({{.}});
{{end}}
{{range .Framework.Footer}}    {{.}}
{{end}}{{.Framework.Closing}}
`))

const banner = "// * * * * * * * * * * * * * * * * * * * * * * * *"
