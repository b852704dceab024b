package pathworld

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

var ErrBadModels = errors.New("model text is not well-formed xml")

// BuildWorld splices the rendered models into the world template after the
// environment includes. The camera block is kept only when vp is set.
func BuildWorld(models string, vp *Viewpoint) (*etree.Document, error) {
	frag := etree.NewDocument()
	if err := frag.ReadFromString("<models>" + models + "</models>"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModels, err)
	}

	doc := worldBlueprint.Copy()
	world := doc.FindElement("./sdf/world")
	if world == nil {
		return nil, errors.New("world template has no <world>")
	}

	gui := world.SelectElement("gui")
	if vp == nil {
		world.RemoveChild(gui)
	} else if err := fillSlot(gui, "./camera/pose", joinFloats(vp.X, vp.Y, vp.Z, 0, 1.57, 1.57, 0)); err != nil {
		return nil, err
	}

	includes := world.SelectElements("include")
	at := includes[len(includes)-1].Index() + 1
	for _, model := range frag.Root().ChildElements() {
		world.InsertChildAt(at, model)
		at = model.Index() + 1
	}

	doc.Indent(2)
	return doc, nil
}

// CreateWorldFile writes the world document to path, replacing any existing file.
func CreateWorldFile(fs afero.Fs, path, models string, vp *Viewpoint) (err error) {
	doc, err := BuildWorld(models, vp)
	if err != nil {
		return err
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
