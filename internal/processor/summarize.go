package processor

import "context"

func (p *implProcessor) Summarize(ctx context.Context, transcript string, save bool) Result {
	p.logger.Info(ctx, "Summarizing transcript: %d characters", len(transcript))

	res := Result{Summary: p.summarizer.Summarize(transcript)}
	if !save {
		return res
	}

	id, err := p.store.Create(ctx, transcript, res.Summary)
	if err != nil {
		p.logger.Error(ctx, "Failed to save session: %v", err)
		res.SaveErr = err
		return res
	}

	p.logger.Info(ctx, "Session saved: %s", id)
	res.SessionID = id
	return res
}
