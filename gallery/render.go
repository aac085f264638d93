package gallery

import (
	"fmt"
	"time"
)

// Render assembles the complete index document for snippets, in the order
// given. The page is self-contained: inline CSS, no external assets. Titles,
// descriptions, and filenames are inserted verbatim; see the package comment
// on escaping.
func Render(snippets []Snippet, now time.Time) []byte {
	b := []byte(pageHead)
	if len(snippets) == 0 {
		b = fmt.Appendf(b, countLine, "No snippets found")
		b = append(b, emptyState...)
	} else {
		plural := "s"
		if len(snippets) == 1 {
			plural = ""
		}
		b = fmt.Appendf(b, countLine, fmt.Sprintf("Found %d snippet%s", len(snippets), plural))
		b = append(b, "            <ul class=\"snippets-list\">\n"...)
		for _, s := range snippets {
			b = append(b, "                <li class=\"snippet-item\">\n"...)
			b = fmt.Appendf(b, "                    <h2><a href=\"%s\">%s</a></h2>\n", s.Filename, s.Title)
			if s.Description != "" { // no empty <p> tags
				b = fmt.Appendf(b, "                    <p class=\"snippet-description\">%s</p>\n", s.Description)
			}
			b = fmt.Appendf(b, "                    <span class=\"snippet-filename\">%s</span>\n", s.Filename)
			b = append(b, "                </li>\n"...)
		}
		b = append(b, "            </ul>"...)
	}
	return fmt.Appendf(b, pageFoot, now.Format("2006-01-02 15:04:05"))
}

const countLine = `            <div class="snippet-count">
                %s
            </div>

`

const emptyState = `            <div class="empty-state">
                <h2>No Snippets Yet</h2>
                <p>Add HTML files to this directory and run genindex again.</p>
            </div>`

const pageFoot = `
        </div>

        <footer>
            <p>Generated on %s | <a href="https://github.com/willf/snippets" target="_blank">View on GitHub</a></p>
        </footer>
    </div>
</body>
</html>
`

// static page shell, appended as-is (never used as a format string).
const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="description" content="A collection of code snippets and small one-page apps">
    <title>Code Snippets Collection</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }

        .container {
            max-width: 900px;
            margin: 0 auto;
            background: white;
            border-radius: 12px;
            box-shadow: 0 10px 40px rgba(0, 0, 0, 0.2);
            overflow: hidden;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 30px;
            text-align: center;
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
            font-weight: 700;
        }

        header p {
            font-size: 1.1em;
            opacity: 0.95;
        }

        .content {
            padding: 40px 30px;
        }

        .snippet-count {
            color: #666;
            font-size: 0.95em;
            margin-bottom: 30px;
            text-align: center;
        }

        .snippets-list {
            list-style: none;
        }

        .snippet-item {
            background: #f8f9fa;
            border-radius: 8px;
            margin-bottom: 20px;
            padding: 25px;
            transition: all 0.3s ease;
            border-left: 4px solid #667eea;
        }

        .snippet-item:hover {
            transform: translateY(-2px);
            box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
            background: #f1f3f5;
        }

        .snippet-item h2 {
            font-size: 1.5em;
            margin-bottom: 10px;
            color: #2d3748;
        }

        .snippet-item h2 a {
            color: #667eea;
            text-decoration: none;
            transition: color 0.3s ease;
        }

        .snippet-item h2 a:hover {
            color: #764ba2;
        }

        .snippet-description {
            color: #666;
            margin-bottom: 12px;
            line-height: 1.5;
        }

        .snippet-filename {
            font-family: 'Courier New', monospace;
            font-size: 0.85em;
            color: #999;
            background: #e9ecef;
            padding: 4px 8px;
            border-radius: 4px;
            display: inline-block;
        }

        .empty-state {
            text-align: center;
            padding: 60px 20px;
            color: #666;
        }

        .empty-state h2 {
            font-size: 1.5em;
            margin-bottom: 10px;
            color: #999;
        }

        footer {
            background: #f8f9fa;
            padding: 20px 30px;
            text-align: center;
            color: #666;
            font-size: 0.9em;
            border-top: 1px solid #e9ecef;
        }

        footer a {
            color: #667eea;
            text-decoration: none;
        }

        footer a:hover {
            text-decoration: underline;
        }

        @media (max-width: 768px) {
            header h1 {
                font-size: 2em;
            }

            .content {
                padding: 30px 20px;
            }

            .snippet-item {
                padding: 20px;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>&#128218; Code Snippets</h1>
            <p>A collection of code snippets and small one-page apps</p>
        </header>

        <div class="content">
`
