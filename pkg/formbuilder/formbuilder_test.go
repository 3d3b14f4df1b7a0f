package formbuilder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-patterns/pkg/formbuilder"
)

const unsanitizedLogin = `<!doctype html>
<html><head><title>Login</title></head><body>
<form><table border="0">
  <tr>
    <td><label for="username">Username:</label></td>
    <td><input name="username" type="text" /></td>
  </tr>
  <tr>
    <td><label for="password">Password:</label></td>
    <td><input name="password" type="password" /></td>
  </tr>
  <tr>
    <td><input type="submit" value="Login" /></td>
    <td><input type="submit" value="Cancel" /></td>
  </tr>
</table></form></body></html>`

func TestCreateLoginForm_HTMLExact(t *testing.T) {
	out, err := formbuilder.CreateLoginForm(formbuilder.NewHTMLBuilder(formbuilder.WithPolicy(nil)))
	if err != nil {
		t.Fatalf("create login form: %v", err)
	}
	if diff := cmp.Diff(unsanitizedLogin, out); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

const sanitizedLogin = `<!doctype html>
<html><head><title>Login</title></head><body>
<form><table border="0">
  <tr>
    <td><label for="username">Username:</label></td>
    <td><input name="username" type="text"/></td>
  </tr>
  <tr>
    <td><label for="password">Password:</label></td>
    <td><input name="password" type="password"/></td>
  </tr>
  <tr>
    <td><input type="submit" value="Login"/></td>
    <td><input type="submit" value="Cancel"/></td>
  </tr>
</table></form></body></html>`

func TestCreateLoginForm_HTMLDefaultPolicyExact(t *testing.T) {
	out, err := formbuilder.CreateLoginForm(formbuilder.NewHTMLBuilder())
	if err != nil {
		t.Fatalf("create login form: %v", err)
	}
	if diff := cmp.Diff(sanitizedLogin, out); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateLoginForm_HTMLStructure(t *testing.T) {
	out, err := formbuilder.CreateLoginForm(formbuilder.NewHTMLBuilder())
	if err != nil {
		t.Fatalf("create login form: %v", err)
	}

	counts := map[string]int{
		"<form>":   1,
		"</form>":  1,
		"<table":   1,
		"</table>": 1,
		"<tr>":     3,
		"</tr>":    3,
	}
	for needle, want := range counts {
		if got := strings.Count(out, needle); got != want {
			t.Fatalf("count(%q) = %d, want %d\n%s", needle, got, want, out)
		}
	}
	for _, needle := range []string{`name="username"`, `type="password"`, `value="Login"`, `for="password"`} {
		if !strings.Contains(out, needle) {
			t.Fatalf("output missing %q:\n%s", needle, out)
		}
	}
	if !strings.HasPrefix(out, "<!doctype html>\n") {
		t.Fatalf("missing doctype:\n%s", out)
	}
	if !strings.HasSuffix(out, "</table></form></body></html>") {
		t.Fatalf("document not closed:\n%s", out)
	}

	order := []string{"Username:", `name="username"`, "Password:", `name="password"`, `value="Login"`, `value="Cancel"`}
	last := -1
	for _, needle := range order {
		idx := strings.Index(out, needle)
		if idx <= last {
			t.Fatalf("%q out of (row, column) order:\n%s", needle, out)
		}
		last = idx
	}
}

func TestHTMLBuilder_FormIsIdempotent(t *testing.T) {
	first, err := formbuilder.CreateLoginForm(formbuilder.NewHTMLBuilder())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := formbuilder.CreateLoginForm(formbuilder.NewHTMLBuilder())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first != second {
		t.Fatalf("runs differ:\n%s\n---\n%s", first, second)
	}

	b := formbuilder.NewHTMLBuilder()
	once, err := formbuilder.CreateLoginForm(b)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	again, err := b.Form()
	if err != nil {
		t.Fatalf("form again: %v", err)
	}
	if once != again {
		t.Fatal("repeated Form calls must return the same artifact")
	}
}

func TestHTMLBuilder_EscapesTitleAndText(t *testing.T) {
	b := formbuilder.NewHTMLBuilder()
	if err := b.AddTitle("<Login>"); err != nil {
		t.Fatalf("title: %v", err)
	}
	if err := b.AddLabel("<b>User</b>", 0, 0, formbuilder.Target(`x"><script>alert(1)</script>`)); err != nil {
		t.Fatalf("label: %v", err)
	}
	out, err := b.Form()
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if !strings.Contains(out, "<title>&lt;Login&gt;</title>") {
		t.Fatalf("title not escaped:\n%s", out)
	}
	if strings.Contains(out, "<Login>") || strings.Contains(out, "<script>") || strings.Contains(out, "<b>") {
		t.Fatalf("raw markup leaked:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;User&lt;/b&gt;:") {
		t.Fatalf("label text not escaped:\n%s", out)
	}
}

func TestHTMLBuilder_EmptyForm(t *testing.T) {
	out, err := formbuilder.NewHTMLBuilder().Form()
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	want := "<!doctype html>\n<html><head><title>Form</title></head><body>\n<form><table border=\"0\">\n</table></form></body></html>"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("html mismatch (-want +got):\n%s", diff)
	}
}

func TestHTMLBuilder_Errors(t *testing.T) {
	b := formbuilder.NewHTMLBuilder()

	if err := b.AddLabel("Name", 0, 0); !errors.Is(err, formbuilder.ErrMissingOption) {
		t.Fatalf("expected ErrMissingOption, got %v", err)
	}
	if err := b.AddEntry("name", 0, 1, formbuilder.Attr("colour", "red")); !errors.Is(err, formbuilder.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if err := b.AddButton("Go", 0, 0, formbuilder.Kind("text")); !errors.Is(err, formbuilder.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption for button kind, got %v", err)
	}
	if err := b.AddEntry("name", -1, 0); !errors.Is(err, formbuilder.ErrInvalidCell) {
		t.Fatalf("expected ErrInvalidCell, got %v", err)
	}
	if err := b.AddEntry("name", 0, 1); err != nil {
		t.Fatalf("entry: %v", err)
	}
	if err := b.AddButton("Go", 0, 1); !errors.Is(err, formbuilder.ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}

	if _, err := b.Form(); err != nil {
		t.Fatalf("form: %v", err)
	}
	if err := b.AddButton("Late", 5, 5); !errors.Is(err, formbuilder.ErrFinalized) {
		t.Fatalf("expected ErrFinalized, got %v", err)
	}
	if err := b.AddTitle("Late"); !errors.Is(err, formbuilder.ErrFinalized) {
		t.Fatalf("expected ErrFinalized for title, got %v", err)
	}
}

func TestHTMLBuilder_SkipsEmptyRows(t *testing.T) {
	b := formbuilder.NewHTMLBuilder(formbuilder.WithPolicy(nil))
	if err := b.AddButton("B", 4, 0); err != nil {
		t.Fatalf("button: %v", err)
	}
	if err := b.AddButton("A", 1, 3); err != nil {
		t.Fatalf("button: %v", err)
	}
	out, err := b.Form()
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if got := strings.Count(out, "<tr>"); got != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", got, out)
	}
	if strings.Index(out, `value="A"`) > strings.Index(out, `value="B"`) {
		t.Fatalf("rows out of order:\n%s", out)
	}
}

func TestCreateLoginForm_Terminal(t *testing.T) {
	out, err := formbuilder.CreateLoginForm(formbuilder.NewTerminalBuilder())
	if err != nil {
		t.Fatalf("create login form: %v", err)
	}
	for _, needle := range []string{"Login", "Username:", "Password:", "[__________]", "[**********]", "< Login >", "< Cancel >", "╭", "╯"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("output missing %q:\n%s", needle, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("ascii profile must not emit escape sequences:\n%s", out)
	}

	lines := strings.Split(out, "\n")
	column := func(line, needle string) int {
		for _, l := range lines {
			if strings.Contains(l, line) {
				return strings.Index(l, needle)
			}
		}
		t.Fatalf("no line containing %q:\n%s", line, out)
		return -1
	}
	user := column("Username:", "[")
	pass := column("Password:", "[")
	cancel := column("< Cancel >", "< Cancel >")
	if user != pass || user != cancel {
		t.Fatalf("second column misaligned (%d, %d, %d):\n%s", user, pass, cancel, out)
	}
}

func TestTerminalBuilder_EntryWidthAndErrors(t *testing.T) {
	b := formbuilder.NewTerminalBuilder(formbuilder.WithEntryWidth(3))
	if err := b.AddEntry("pin", 0, 0, formbuilder.Kind(formbuilder.KindPassword)); err != nil {
		t.Fatalf("entry: %v", err)
	}
	if err := b.AddEntry("pin", 0, 0); !errors.Is(err, formbuilder.ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if err := b.AddLabel("x", 1, 0, formbuilder.Attr("style", "bold")); !errors.Is(err, formbuilder.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	out, err := b.Form()
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if !strings.Contains(out, "[***]") {
		t.Fatalf("expected 3-wide masked entry:\n%s", out)
	}
	again, _ := b.Form()
	if again != out {
		t.Fatal("repeated Form calls must return the same artifact")
	}
	if err := b.AddTitle("late"); !errors.Is(err, formbuilder.ErrFinalized) {
		t.Fatalf("expected ErrFinalized, got %v", err)
	}
}

type failingBuilder struct {
	formbuilder.Builder
	calls int
}

func (f *failingBuilder) AddTitle(string) error {
	f.calls++
	return nil
}

func (f *failingBuilder) AddLabel(string, int, int, ...formbuilder.Option) error {
	f.calls++
	return errors.New("no labels here")
}

func TestCreateLoginForm_StopsAtFirstError(t *testing.T) {
	b := &failingBuilder{}
	if _, err := formbuilder.CreateLoginForm(b); err == nil {
		t.Fatal("expected director to surface the builder error")
	}
	if b.calls != 2 {
		t.Fatalf("expected 2 calls before stopping, got %d", b.calls)
	}
}

func TestRegistry(t *testing.T) {
	reg := formbuilder.Default()
	if diff := cmp.Diff([]string{"html", "terminal"}, reg.List()); diff != "" {
		t.Fatalf("builder list mismatch (-want +got):\n%s", diff)
	}
	for _, name := range reg.List() {
		b, err := reg.New(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, err := formbuilder.CreateLoginForm(b); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := reg.New("tk"); !errors.Is(err, formbuilder.ErrUnknownBuilder) {
		t.Fatalf("expected ErrUnknownBuilder, got %v", err)
	}
	if err := reg.Register("html", func() formbuilder.Builder { return formbuilder.NewHTMLBuilder() }); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}
