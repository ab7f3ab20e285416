package gl

// Null is a Driver that does nothing. Queries return zero values, status
// queries report success. It backs glw.None.
var Null Driver = nullDriver{}

type nullDriver struct{}

func (nullDriver) GetError() uint32              { return GL_NO_ERROR }
func (nullDriver) GetIntegerv(uint32) int32      { return 0 }
func (nullDriver) GetString(uint32) string       { return "" }
func (nullDriver) Enable(uint32)                 {}
func (nullDriver) Disable(uint32)                {}
func (nullDriver) DepthFunc(uint32)              {}
func (nullDriver) DepthMask(bool)                {}
func (nullDriver) DepthRange(float64, float64)   {}
func (nullDriver) Viewport(_, _, _, _ int32)     {}
func (nullDriver) Scissor(_, _, _, _ int32)      {}
func (nullDriver) BlendFunc(_, _ uint32)         {}
func (nullDriver) PolygonMode(_, _ uint32)       {}
func (nullDriver) CullFace(uint32)               {}
func (nullDriver) ClearColor(_, _, _, _ float32) {}
func (nullDriver) Clear(uint32)                  {}

func (nullDriver) ActiveTexture(uint32)                                                  {}
func (nullDriver) BindTexture(_, _ uint32)                                               {}
func (nullDriver) GenTexture() uint32                                                    { return 0 }
func (nullDriver) DeleteTexture(uint32)                                                  {}
func (nullDriver) TexImage2D(uint32, int32, int32, int32, int32, uint32, uint32, []byte) {}
func (nullDriver) TexSubImage2D(uint32, int32, int32, int32, int32, int32, uint32, uint32, []byte) {
}
func (nullDriver) TexParameteri(uint32, uint32, int32)      {}
func (nullDriver) TexParameterfv(uint32, uint32, []float32) {}
func (nullDriver) GenerateMipmap(uint32)                    {}
func (nullDriver) PixelStorei(uint32, int32)                {}

func (nullDriver) GenBuffer() uint32                                           { return 0 }
func (nullDriver) DeleteBuffer(uint32)                                         {}
func (nullDriver) BindBuffer(_, _ uint32)                                      {}
func (nullDriver) BindBufferBase(_, _, _ uint32)                               {}
func (nullDriver) BufferData(uint32, int, []byte, uint32)                      {}
func (nullDriver) BufferSubData(uint32, int, []byte)                           {}
func (nullDriver) GenVertexArray() uint32                                      { return 0 }
func (nullDriver) DeleteVertexArray(uint32)                                    {}
func (nullDriver) BindVertexArray(uint32)                                      {}
func (nullDriver) EnableVertexAttribArray(uint32)                              {}
func (nullDriver) VertexAttribPointer(uint32, int32, uint32, bool, int32, int) {}

func (nullDriver) GenFramebuffer() uint32                          { return 0 }
func (nullDriver) DeleteFramebuffer(uint32)                        {}
func (nullDriver) BindFramebuffer(_, _ uint32)                     {}
func (nullDriver) FramebufferTexture2D(_, _, _, _ uint32, _ int32) {}
func (nullDriver) FramebufferRenderbuffer(_, _, _, _ uint32)       {}
func (nullDriver) CheckFramebufferStatus(uint32) uint32            { return GL_FRAMEBUFFER_COMPLETE }
func (nullDriver) DrawBuffer(uint32)                               {}
func (nullDriver) ReadBuffer(uint32)                               {}
func (nullDriver) GenRenderbuffer() uint32                         { return 0 }
func (nullDriver) DeleteRenderbuffer(uint32)                       {}
func (nullDriver) BindRenderbuffer(_, _ uint32)                    {}
func (nullDriver) RenderbufferStorage(_, _ uint32, _, _ int32)     {}

func (nullDriver) CreateShader(uint32) uint32              { return 0 }
func (nullDriver) ShaderSource(uint32, string)             {}
func (nullDriver) CompileShader(uint32)                    {}
func (nullDriver) GetShaderiv(_, _ uint32) int32           { return GL_TRUE }
func (nullDriver) GetShaderInfoLog(uint32) string          { return "" }
func (nullDriver) DeleteShader(uint32)                     {}
func (nullDriver) CreateProgram() uint32                   { return 0 }
func (nullDriver) AttachShader(_, _ uint32)                {}
func (nullDriver) DetachShader(_, _ uint32)                {}
func (nullDriver) LinkProgram(uint32)                      {}
func (nullDriver) ValidateProgram(uint32)                  {}
func (nullDriver) GetProgramiv(_, _ uint32) int32          { return GL_TRUE }
func (nullDriver) GetProgramInfoLog(uint32) string         { return "" }
func (nullDriver) DeleteProgram(uint32)                    {}
func (nullDriver) UseProgram(uint32)                       {}
func (nullDriver) GetUniformLocation(uint32, string) int32 { return -1 }
func (nullDriver) GetAttribLocation(uint32, string) int32  { return -1 }

func (nullDriver) Uniformiv(int32, int, []int32)               {}
func (nullDriver) Uniformuiv(int32, int, []uint32)             {}
func (nullDriver) Uniformfv(int32, int, []float32)             {}
func (nullDriver) Uniformdv(int32, int, []float64)             {}
func (nullDriver) UniformMatrixfv(int32, int, bool, []float32) {}

func (nullDriver) DrawArrays(uint32, int32, int32)         {}
func (nullDriver) DrawElements(uint32, int32, uint32, int) {}
