// Package video plays a video file as a sequence of rendered text frames.
//
// A [Decoder] runs ffmpeg as a subprocess and reads raw RGB frames from its
// stdout, one at a time, in order. A [Loop] pulls frames from any
// [FrameSource], renders each through an [ascii.Converter], shows it on a
// [Surface] and then sleeps for a fixed 1/fps delay. Rendering time is not
// subtracted from the delay, so playback runs slower than the requested rate
// when rendering is slow.
//
// Audio is handled separately by [Audio], which launches ffplay against the
// same file. The two never communicate; audio and video drift independently.
package video
