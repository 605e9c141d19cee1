package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/verba/internal/export"
	"github.com/nguyentantai21042004/verba/internal/models"
)

func (p *implProcessor) Export(ctx context.Context, id string, format export.Format) (export.Document, error) {
	sess, err := p.store.Get(ctx, id)
	if err != nil {
		return export.Document{}, err
	}
	return p.render(sess, format)
}

func (p *implProcessor) render(sess models.Session, format export.Format) (export.Document, error) {
	doc := export.Document{
		Name:        export.FileName(sess.ID, format),
		ContentType: format.ContentType(),
	}

	switch format {
	case export.FormatDocx:
		body, err := export.Docx(sess, p.cfg.Paths.Temp)
		if err != nil {
			return export.Document{}, fmt.Errorf("render docx: %w", err)
		}
		doc.Body = body
	default:
		doc.Body = []byte(export.Markdown(sess))
	}

	return doc, nil
}
