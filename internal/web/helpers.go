package web

import "strconv"

func utoa(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

// pageShell wraps a page body in the shared document frame. Styling is
// inline so the pages work with no static asset pipeline.
func pageShell(title, body string) string {
	return `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>` + title + `</title>
    <style>
      body { font-family: Georgia, serif; background: #12100e; color: #e8e2d6; margin: 0; }
      main { max-width: 40rem; margin: 0 auto; padding: 2rem 1rem; }
      h1 { font-size: 1.6rem; letter-spacing: 0.08em; text-transform: uppercase; }
      section { background: #1d1a17; border: 1px solid #35302a; border-radius: 8px; padding: 1rem; margin-bottom: 1.25rem; }
      input, select, textarea { width: 100%; box-sizing: border-box; padding: 0.5rem; margin: 0.25rem 0 0.75rem; background: #26221e; color: inherit; border: 1px solid #4a443c; border-radius: 4px; }
      button { padding: 0.5rem 1.25rem; background: #8d2b2b; color: #f4efe6; border: none; border-radius: 4px; cursor: pointer; }
      button.quiet { background: #3a3530; }
      .result { margin-top: 0.5rem; min-height: 1.25rem; color: #c9a86a; }
      table { width: 100%; border-collapse: collapse; }
      td, th { padding: 0.35rem 0.5rem; border-bottom: 1px solid #35302a; text-align: left; }
      .done { color: #6fae6f; }
      .pending { color: #c9a86a; }
    </style>
  </head>
  <body>
    <main>
` + body + `
    </main>
  </body>
</html>
`
}
