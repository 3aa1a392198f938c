package stt

import (
	"context"
	"errors"
	"sort"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"

	"github.com/coopnet/meeting-insights/internal/models"
)

type GoogleSpeech struct {
	c *speech.Client

	Encoding     speechpb.RecognitionConfig_AudioEncoding
	SampleRateHz int32
	LanguageCode string
	Model        string

	MinSpeakers int32
	MaxSpeakers int32
}

// NewGoogleSpeech connects a diarizing recognizer. Defaults match the
// reference deployment: MP3 at 16kHz, en-US, telephony model.
func NewGoogleSpeech(ctx context.Context, minSpeakers, maxSpeakers int, credentialsFile string) (*GoogleSpeech, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	c, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GoogleSpeech{
		c:            c,
		Encoding:     speechpb.RecognitionConfig_MP3,
		SampleRateHz: 16000,
		LanguageCode: "en-US",
		Model:        "telephony",
		MinSpeakers:  int32(minSpeakers),
		MaxSpeakers:  int32(maxSpeakers),
	}, nil
}

func (g *GoogleSpeech) Close() error { return g.c.Close() }

// Transcribe runs a long-running recognize against a gs:// locator and
// blocks until the operation completes or ctx expires. The caller owns
// the deadline; long recordings legitimately take minutes.
func (g *GoogleSpeech) Transcribe(ctx context.Context, locator string) ([]models.WordToken, []int, error) {
	op, err := g.c.LongRunningRecognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   g.Encoding,
			SampleRateHertz:            g.SampleRateHz,
			LanguageCode:               g.LanguageCode,
			Model:                      g.Model,
			EnableAutomaticPunctuation: true,
			EnableWordTimeOffsets:      true,
			DiarizationConfig: &speechpb.SpeakerDiarizationConfig{
				EnableSpeakerDiarization: true,
				MinSpeakerCount:          g.MinSpeakers,
				MaxSpeakerCount:          g.MaxSpeakers,
			},
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{Uri: locator},
		},
	})
	if err != nil {
		return nil, nil, err
	}

	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, nil, err
	}

	// With diarization the final result carries the speaker-tagged word
	// stream for the whole audio.
	if len(resp.Results) == 0 {
		return nil, nil, errors.New("transcription returned no results")
	}
	last := resp.Results[len(resp.Results)-1]
	if len(last.Alternatives) == 0 || len(last.Alternatives[0].Words) == 0 {
		return nil, nil, errors.New("transcription returned no words")
	}

	wordInfos := last.Alternatives[0].Words
	words := make([]models.WordToken, 0, len(wordInfos))
	tagSet := make(map[int]struct{})
	for _, w := range wordInfos {
		tag := int(w.SpeakerTag)
		words = append(words, models.WordToken{
			Text:        w.Word,
			StartOffset: w.StartTime.AsDuration(),
			SpeakerTag:  tag,
		})
		if tag != 0 {
			tagSet[tag] = struct{}{}
		}
	}

	tags := make([]int, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Ints(tags)

	return words, tags, nil
}
