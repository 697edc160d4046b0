package cmd

// RunAll writes the sprites and then the audio files, printing one combined
// summary.
func RunAll(opts GenerateOptions) error {
	opts = opts.withDefaults()

	sprites, err := generateSprites(opts)
	if err != nil {
		return err
	}
	audio, err := generateAudio(opts)
	if err != nil {
		return err
	}
	return printSummary(opts.Out, sprites, audio)
}
