package template

// EpubCSS is shipped as style.css inside exported books.
const EpubCSS = `
body > div {
  margin: 0 auto;
  padding: 20px;
  box-sizing: border-box;
  background-color: #fff;
  line-height: 1.6;
  text-align: justify;
  color: #333333;
}

h1, h2 {
  text-align: center;
  margin: 1.5em auto;
  font-weight: bold;
  color: #2c3e50;
}

h1 { font-size: 1.5em; }
h2 { font-size: 1.2em; }

p {
  margin: 0.8em 0;
  font-size: 1.05em;
}

blockquote {
  margin: 1em 2em;
  font-style: italic;
  color: #555;
}

hr {
  border: none;
  border-bottom: 1px solid #e0e0e0;
  margin: 1.5em 20%;
}

img {
  max-width: 80%;
  height: auto;
  display: block;
  margin: 1em auto;
}

nav#toc ol {
  list-style: none;
  padding: 0;
}

nav#toc li {
  margin: 0.4em 0;
}
`

// AdminCSS is served at /static/admin.css.
const AdminCSS = `
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: #1f2937; background: #f3f4f6; }
a { color: #4f46e5; text-decoration: none; }

.admin-shell { display: flex; min-height: 100vh; }
.sidebar { width: 240px; background: #1e1b4b; color: #e0e7ff; padding: 1.5rem 1rem; flex-shrink: 0; }
.brand { font-size: 1.25rem; font-weight: 700; margin-bottom: 2rem; }
.sidebar nav { display: flex; flex-direction: column; gap: 0.25rem; }
.nav-link { color: #c7d2fe; padding: 0.6rem 0.8rem; border-radius: 6px; }
.nav-link:hover { background: #312e81; }
.nav-link.active { background: #4f46e5; color: #fff; }

.admin-page { flex: 1; padding: 2rem; max-width: 1400px; }
.page-header h1 { margin: 0 0 0.25rem; font-size: 1.75rem; }
.page-header p { margin: 0 0 1.5rem; color: #6b7280; }
.list-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
.list-header h2 { margin: 0; font-size: 1.25rem; }
.header-actions, .quick-actions { display: flex; gap: 0.5rem; flex-wrap: wrap; }

.alert { display: flex; justify-content: space-between; align-items: center; padding: 0.8rem 1rem; border-radius: 6px; margin-bottom: 1rem; }
.alert-success { background: #dcfce7; color: #166534; }
.alert-error { background: #fee2e2; color: #991b1b; }
.alert-close { background: none; border: none; font-size: 1.2rem; cursor: pointer; color: inherit; }

.btn { display: inline-block; padding: 0.5rem 0.9rem; border-radius: 6px; border: 1px solid transparent; font-size: 0.9rem; cursor: pointer; line-height: 1.2; }
.btn-primary { background: #4f46e5; color: #fff; }
.btn-secondary { background: #fff; color: #374151; border-color: #d1d5db; }
.btn-danger { background: #dc2626; color: #fff; }
.btn-warning { background: #f59e0b; color: #fff; }
.btn-outline { background: transparent; color: #4f46e5; border-color: #4f46e5; }
.inline-form { display: inline; }

.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 1rem; margin-bottom: 1.5rem; }
.stat-card { background: #fff; border-radius: 8px; padding: 1rem 1.25rem; box-shadow: 0 1px 2px rgba(0,0,0,0.06); border-left: 4px solid #4f46e5; }
.stat-success { border-left-color: #16a34a; }
.stat-warning { border-left-color: #f59e0b; }
.stat-info { border-left-color: #0ea5e9; }
.stat-danger { border-left-color: #dc2626; }
.stat-value { font-size: 1.6rem; font-weight: 700; }
.stat-label { color: #6b7280; font-size: 0.85rem; }

.search-bar { display: flex; gap: 0.5rem; align-items: center; margin-bottom: 1rem; flex-wrap: wrap; }
.search-bar .form-input { flex: 1; min-width: 220px; }
.filter { display: flex; gap: 0.4rem; align-items: center; font-size: 0.85rem; color: #4b5563; }

.table-container { background: #fff; border-radius: 8px; overflow-x: auto; box-shadow: 0 1px 2px rgba(0,0,0,0.06); }
.table { width: 100%; border-collapse: collapse; font-size: 0.9rem; }
.table th, .table td { padding: 0.7rem 0.9rem; text-align: left; border-bottom: 1px solid #e5e7eb; vertical-align: top; }
.table th { background: #f9fafb; font-weight: 600; color: #374151; }
.cell-strong { font-weight: 600; }
.cell-muted { color: #6b7280; }
.cell-note { margin-top: 2px; font-size: 12px; font-weight: 400; color: #6b7280; }
.row-actions { white-space: nowrap; }
.row-actions .btn { padding: 0.3rem 0.6rem; font-size: 0.8rem; margin-right: 0.25rem; }

.badge { display: inline-block; padding: 0.15rem 0.55rem; border-radius: 999px; font-size: 0.75rem; font-weight: 600; }
.badge-primary { background: #e0e7ff; color: #3730a3; }
.badge-success { background: #dcfce7; color: #166534; }
.badge-warning { background: #fef3c7; color: #92400e; }
.badge-info { background: #e0f2fe; color: #075985; }
.badge-secondary { background: #e5e7eb; color: #374151; }
.badge-default { background: #f3f4f6; color: #4b5563; }
.badge-danger { background: #fee2e2; color: #991b1b; }

.empty-state { background: #fff; border-radius: 8px; padding: 3rem; text-align: center; color: #6b7280; }
.empty-state h3 { color: #1f2937; margin-top: 0; }

.modal-overlay { position: fixed; inset: 0; background: rgba(17,24,39,0.55); display: flex; align-items: flex-start; justify-content: center; overflow-y: auto; padding: 3rem 1rem; }
.modal { background: #fff; border-radius: 10px; width: 100%; max-width: 760px; padding: 1.5rem; }
.modal-wide { max-width: 960px; }
.modal-header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 1rem; }
.modal-header h2 { margin: 0; }
.modal-subtitle { margin: 0.25rem 0 0; color: #6b7280; }
.modal-close { font-size: 1.5rem; color: #6b7280; }

.form-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1rem; }
.form-group { display: flex; flex-direction: column; gap: 0.3rem; }
.form-group-wide { grid-column: 1 / -1; }
.form-label { font-weight: 600; font-size: 0.85rem; }
.required { color: #dc2626; margin-left: 0.2rem; }
.form-input, .form-select, .form-textarea { padding: 0.5rem 0.65rem; border: 1px solid #d1d5db; border-radius: 6px; font: inherit; }
.form-textarea { font-family: ui-monospace, monospace; }
.has-error .form-input, .has-error .form-select, .has-error .form-textarea { border-color: #dc2626; }
.form-error { color: #dc2626; font-size: 0.8rem; }
.form-help { color: #6b7280; font-size: 0.8rem; }
.form-actions { display: flex; justify-content: flex-end; gap: 0.5rem; margin-top: 1.25rem; }
.checkbox-label { display: flex; gap: 0.5rem; align-items: center; }

.meta-list { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 0.75rem; margin: 0 0 1rem; }
.meta-item dt { font-size: 0.75rem; color: #6b7280; text-transform: uppercase; }
.meta-item dd { margin: 0.15rem 0 0; }
.content-preview { border: 1px solid #e5e7eb; border-radius: 8px; padding: 1rem 1.25rem; max-height: 60vh; overflow-y: auto; }
.message-body { white-space: pre-wrap; background: #f9fafb; border-radius: 8px; padding: 1rem; }
.inline-status-form { display: flex; gap: 0.75rem; align-items: flex-end; margin-top: 1rem; }

.confirm-dialog { background: #fff; border-radius: 8px; padding: 1.5rem; max-width: 560px; }
.confirm-dialog form { display: flex; gap: 0.5rem; justify-content: flex-end; margin-top: 1rem; }
.dashboard-section { margin-top: 2rem; }
`
