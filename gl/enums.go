package gl

// OpenGL enumerants used by glw. Values match the Khronos registry.
const (
	GL_FALSE = 0
	GL_TRUE  = 1
	GL_NONE  = 0
	GL_ZERO  = 0
	GL_ONE   = 1

	GL_NO_ERROR                      = 0
	GL_INVALID_ENUM                  = 0x0500
	GL_INVALID_VALUE                 = 0x0501
	GL_INVALID_OPERATION             = 0x0502
	GL_OUT_OF_MEMORY                 = 0x0505
	GL_INVALID_FRAMEBUFFER_OPERATION = 0x0506

	GL_DEPTH_BUFFER_BIT   = 0x00000100
	GL_STENCIL_BUFFER_BIT = 0x00000400
	GL_COLOR_BUFFER_BIT   = 0x00004000

	GL_POINTS         = 0x0000
	GL_LINES          = 0x0001
	GL_LINE_LOOP      = 0x0002
	GL_LINE_STRIP     = 0x0003
	GL_TRIANGLES      = 0x0004
	GL_TRIANGLE_STRIP = 0x0005
	GL_TRIANGLE_FAN   = 0x0006

	GL_NEVER    = 0x0200
	GL_LESS     = 0x0201
	GL_EQUAL    = 0x0202
	GL_LEQUAL   = 0x0203
	GL_GREATER  = 0x0204
	GL_NOTEQUAL = 0x0205
	GL_GEQUAL   = 0x0206
	GL_ALWAYS   = 0x0207

	GL_SRC_COLOR           = 0x0300
	GL_ONE_MINUS_SRC_COLOR = 0x0301
	GL_SRC_ALPHA           = 0x0302
	GL_ONE_MINUS_SRC_ALPHA = 0x0303
	GL_DST_ALPHA           = 0x0304
	GL_ONE_MINUS_DST_ALPHA = 0x0305
	GL_DST_COLOR           = 0x0306
	GL_ONE_MINUS_DST_COLOR = 0x0307

	GL_FRONT          = 0x0404
	GL_BACK           = 0x0405
	GL_FRONT_AND_BACK = 0x0408

	GL_CULL_FACE    = 0x0B44
	GL_DEPTH_TEST   = 0x0B71
	GL_STENCIL_TEST = 0x0B90
	GL_BLEND        = 0x0BE2
	GL_SCISSOR_TEST = 0x0C11
	GL_DEPTH_CLAMP  = 0x864F

	GL_POINT = 0x1B00
	GL_LINE  = 0x1B01
	GL_FILL  = 0x1B02

	GL_VENDOR   = 0x1F00
	GL_RENDERER = 0x1F01
	GL_VERSION  = 0x1F02

	GL_BYTE           = 0x1400
	GL_UNSIGNED_BYTE  = 0x1401
	GL_SHORT          = 0x1402
	GL_UNSIGNED_SHORT = 0x1403
	GL_INT            = 0x1404
	GL_UNSIGNED_INT   = 0x1405
	GL_FLOAT          = 0x1406
	GL_DOUBLE         = 0x140A

	GL_DEPTH_COMPONENT    = 0x1902
	GL_RED                = 0x1903
	GL_RGB                = 0x1907
	GL_RGBA               = 0x1908
	GL_RGBA8              = 0x8058
	GL_DEPTH_COMPONENT24  = 0x81A6
	GL_DEPTH_COMPONENT32F = 0x8CAC
	GL_DEPTH24_STENCIL8   = 0x88F0

	GL_TEXTURE_1D             = 0x0DE0
	GL_TEXTURE_2D             = 0x0DE1
	GL_TEXTURE_3D             = 0x806F
	GL_TEXTURE_RECTANGLE      = 0x84F5
	GL_TEXTURE_CUBE_MAP       = 0x8513
	GL_TEXTURE_1D_ARRAY       = 0x8C18
	GL_TEXTURE_2D_ARRAY       = 0x8C1A
	GL_TEXTURE_BUFFER         = 0x8C2A
	GL_TEXTURE_2D_MULTISAMPLE = 0x9100

	GL_TEXTURE0               = 0x84C0
	GL_UNPACK_ALIGNMENT       = 0x0CF5
	GL_TEXTURE_BORDER_COLOR   = 0x1004
	GL_TEXTURE_MAG_FILTER     = 0x2800
	GL_TEXTURE_MIN_FILTER     = 0x2801
	GL_TEXTURE_WRAP_S         = 0x2802
	GL_TEXTURE_WRAP_T         = 0x2803
	GL_TEXTURE_COMPARE_MODE   = 0x884C
	GL_TEXTURE_COMPARE_FUNC   = 0x884D
	GL_COMPARE_REF_TO_TEXTURE = 0x884E

	GL_NEAREST                = 0x2600
	GL_LINEAR                 = 0x2601
	GL_NEAREST_MIPMAP_NEAREST = 0x2700
	GL_LINEAR_MIPMAP_NEAREST  = 0x2701
	GL_NEAREST_MIPMAP_LINEAR  = 0x2702
	GL_LINEAR_MIPMAP_LINEAR   = 0x2703
	GL_REPEAT                 = 0x2901
	GL_CLAMP_TO_BORDER        = 0x812D
	GL_CLAMP_TO_EDGE          = 0x812F
	GL_MIRRORED_REPEAT        = 0x8370

	GL_ARRAY_BUFFER              = 0x8892
	GL_ELEMENT_ARRAY_BUFFER      = 0x8893
	GL_PIXEL_PACK_BUFFER         = 0x88EB
	GL_PIXEL_UNPACK_BUFFER       = 0x88EC
	GL_UNIFORM_BUFFER            = 0x8A11
	GL_TRANSFORM_FEEDBACK_BUFFER = 0x8C8E
	GL_COPY_READ_BUFFER          = 0x8F36
	GL_COPY_WRITE_BUFFER         = 0x8F37
	GL_DRAW_INDIRECT_BUFFER      = 0x8F3F
	GL_DISPATCH_INDIRECT_BUFFER  = 0x90EE
	GL_SHADER_STORAGE_BUFFER     = 0x90D2
	GL_QUERY_BUFFER              = 0x9192
	GL_ATOMIC_COUNTER_BUFFER     = 0x92C0

	GL_STREAM_DRAW  = 0x88E0
	GL_STATIC_DRAW  = 0x88E4
	GL_DYNAMIC_DRAW = 0x88E8

	GL_FRAMEBUFFER              = 0x8D40
	GL_READ_FRAMEBUFFER         = 0x8CA8
	GL_DRAW_FRAMEBUFFER         = 0x8CA9
	GL_RENDERBUFFER             = 0x8D41
	GL_COLOR_ATTACHMENT0        = 0x8CE0
	GL_DEPTH_ATTACHMENT         = 0x8D00
	GL_STENCIL_ATTACHMENT       = 0x8D20
	GL_DEPTH_STENCIL_ATTACHMENT = 0x821A
	GL_FRAMEBUFFER_COMPLETE     = 0x8CD5

	GL_FRAGMENT_SHADER = 0x8B30
	GL_VERTEX_SHADER   = 0x8B31
	GL_COMPILE_STATUS  = 0x8B81
	GL_LINK_STATUS     = 0x8B82
	GL_VALIDATE_STATUS = 0x8B83
	GL_INFO_LOG_LENGTH = 0x8B84

	GL_MAX_TEXTURE_SIZE                   = 0x0D33
	GL_MAX_DRAW_BUFFERS                   = 0x8824
	GL_MAX_VERTEX_ATTRIBS                 = 0x8869
	GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS   = 0x8B4D
	GL_MAX_UNIFORM_BUFFER_BINDINGS        = 0x8A2F
	GL_MAX_TRANSFORM_FEEDBACK_BUFFERS     = 0x8E70
	GL_MAX_SHADER_STORAGE_BUFFER_BINDINGS = 0x90DD
	GL_MAX_ATOMIC_COUNTER_BUFFER_BINDINGS = 0x92DC
)
