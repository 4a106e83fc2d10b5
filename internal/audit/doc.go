// Package audit runs an external page-audit tool (Lighthouse) over a list
// of pages and collects category scores and Core Web Vitals.
//
// The tool is driven through the Runner interface. LighthouseRunner shells
// out to `npx lighthouse`; tests substitute a fake. Each page writes a
// <name>.report.json and <name>.report.html into the reports directory, and
// the JSON is parsed into model.Scores.
//
// Pages are audited one at a time by default since the tool monopolizes a
// headless browser. A failed page is recorded with nil scores and the batch
// continues.
package audit
